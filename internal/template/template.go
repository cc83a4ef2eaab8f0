// Package template renders the text artifacts the provisioner writes:
// Apache virtual-host blocks and per-site database init SQL. Templates
// are embedded in the binary so the entrypoint has no runtime template
// files to locate.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

// VHostData contains data for rendering a virtual-host block.
type VHostData struct {
	Domain  string
	Root    string
	Aliases []string
	Default bool // catch-all vhost: no ServerName/ServerAlias lines
}

// DBInitData contains data for rendering a site's database init SQL.
type DBInitData struct {
	Name     string
	User     string
	Password string
}

// RenderVHost renders the port-80 virtual-host block for one site.
func RenderVHost(data VHostData) (string, error) {
	return render(apacheTemplates, "apache/site.tmpl", data)
}

// RenderDefaultVHost renders the synthesized catch-all pair: a named
// vhost for "default" and a true wildcard vhost, both redirecting to a
// 404 so unmatched Host headers never fall through to a real site.
func RenderDefaultVHost() (string, error) {
	return render(apacheTemplates, "apache/default.tmpl", nil)
}

// RenderDBInit renders the SQL block that creates one site's database,
// user, and grant. The statements are conditional so re-running the
// block against an initialized engine is a no-op.
func RenderDBInit(data DBInitData) (string, error) {
	return render(sqlTemplates, "sql/site.tmpl", data)
}

// render parses and executes a template from an embedded filesystem.
func render(fs embed.FS, name string, data interface{}) (string, error) {
	content, err := fs.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template not found: %s", name)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}

	return buf.String(), nil
}
