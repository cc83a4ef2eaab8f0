// Package site models one domain-scoped WordPress installation: its
// identity, database credentials, and the text artifacts derived from
// them.
package site

import (
	"path/filepath"
	"strings"

	"github.com/songmash/single-container-wordpress/internal/config"
	"github.com/songmash/single-container-wordpress/internal/secret"
	"github.com/songmash/single-container-wordpress/internal/template"
)

// DefaultDomain is the sentinel domain marking the catch-all vhost.
const DefaultDomain = "default"

// Site holds one site's resolved settings. Immutable after construction:
// every credential field is non-empty, either read from the config entry
// or generated.
type Site struct {
	Domain     string
	SafeName   string
	DBName     string
	DBUser     string
	DBPassword string
	Aliases    []string
	Folder     string
}

// New builds a Site from a domain key and its optional options mapping.
// A nil opts is treated as an empty mapping. Missing database name and
// user fall back to the domain with dots replaced by underscores; a
// missing password is freshly generated.
func New(docRoot, domain string, opts *config.SiteOptions) *Site {
	if opts == nil {
		opts = &config.SiteOptions{}
	}

	s := &Site{
		Domain:   domain,
		SafeName: strings.ReplaceAll(domain, ".", "_"),
		Aliases:  opts.Alias,
		Folder:   filepath.Join(docRoot, domain),
	}

	s.DBName = opts.DatabaseName
	if s.DBName == "" {
		s.DBName = s.SafeName
	}
	s.DBUser = opts.DatabaseUserName
	if s.DBUser == "" {
		s.DBUser = s.SafeName
	}
	s.DBPassword = opts.DatabasePassword
	if s.DBPassword == "" {
		s.DBPassword = secret.RandomPassword()
	}

	return s
}

// IsDefault reports whether this site is the catch-all vhost.
func (s *Site) IsDefault() bool {
	return s.Domain == DefaultDomain
}

// DBScript returns the SQL block creating this site's database, user,
// and grant. The statements are conditional, so loading the block into
// an already-initialized engine is harmless.
func (s *Site) DBScript() (string, error) {
	return template.RenderDBInit(template.DBInitData{
		Name:     s.DBName,
		User:     s.DBUser,
		Password: s.DBPassword,
	})
}

// VHostConfig returns the Apache virtual-host block for this site. The
// catch-all site gets no ServerName or ServerAlias lines; any other site
// gets its ServerName plus one ServerAlias per alias, in config order.
func (s *Site) VHostConfig() (string, error) {
	return template.RenderVHost(template.VHostData{
		Domain:  s.Domain,
		Root:    s.Folder,
		Aliases: s.Aliases,
		Default: s.IsDefault(),
	})
}
