// Package apache manages the Apache vhost files the provisioner writes
// under sites-enabled.
//
// Writes are first-run-wins: an existing conf file is never overwritten,
// so a container restarting over persisted state keeps the configuration
// it already has.
package apache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/songmash/single-container-wordpress/internal/template"
)

// DefaultSitesDir is where Apache picks up enabled vhosts.
const DefaultSitesDir = "/etc/apache2/sites-enabled"

// DefaultConfName is the synthesized catch-all conf file.
const DefaultConfName = "default"

// Manager writes vhost conf files into a sites-enabled directory.
type Manager struct {
	sitesDir string
}

// New creates a Manager for the standard Apache sites-enabled directory.
func New() *Manager {
	return NewWithDir(DefaultSitesDir)
}

// NewWithDir creates a Manager writing into a custom directory.
func NewWithDir(dir string) *Manager {
	return &Manager{sitesDir: dir}
}

// SitesDir returns the directory this manager writes into.
func (m *Manager) SitesDir() string {
	return m.sitesDir
}

// ConfPath returns the conf file path for a domain.
func (m *Manager) ConfPath(domain string) string {
	return filepath.Join(m.sitesDir, domain+".conf")
}

// HasVHost reports whether a conf file for the domain already exists.
func (m *Manager) HasVHost(domain string) bool {
	_, err := os.Stat(m.ConfPath(domain))
	return err == nil
}

// WriteVHost writes the vhost conf for a domain unless one already
// exists. It reports whether a file was written.
func (m *Manager) WriteVHost(domain, content string) (bool, error) {
	if m.HasVHost(domain) {
		return false, nil
	}
	if err := os.WriteFile(m.ConfPath(domain), []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to write vhost for %s: %w", domain, err)
	}
	return true, nil
}

// EnsureDefault synthesizes the catch-all conf if no default conf file
// exists yet: a named vhost for "default" plus a true wildcard vhost,
// both redirecting unmatched requests to a 404. It reports whether a
// file was written.
func (m *Manager) EnsureDefault() (bool, error) {
	if m.HasVHost(DefaultConfName) {
		return false, nil
	}

	content, err := template.RenderDefaultVHost()
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(m.ConfPath(DefaultConfName), []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to write default vhost: %w", err)
	}
	return true, nil
}
