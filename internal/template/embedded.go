package template

import "embed"

//go:embed apache/*.tmpl
var apacheTemplates embed.FS

//go:embed sql/*.tmpl
var sqlTemplates embed.FS
