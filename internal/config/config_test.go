package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/songmash/single-container-wordpress/internal/errors"
)

// writeConfig writes a config document to a temp file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wp-docker-config.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("FullDocument", func(t *testing.T) {
		path := writeConfig(t, `
sites:
  a.com:
    database_name: adb
    database_user_name: auser
    database_password: apass
    alias:
      - www.a.com
      - web.a.com
  b.org:
  default:
database:
  root_password: secret
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if len(cfg.Sites) != 3 {
			t.Fatalf("expected 3 sites, got %d", len(cfg.Sites))
		}

		a := cfg.Sites[0]
		if a.Domain != "a.com" {
			t.Errorf("expected a.com first, got %s", a.Domain)
		}
		if a.Options == nil {
			t.Fatal("a.com should have options")
		}
		if a.Options.DatabaseName != "adb" {
			t.Errorf("expected adb, got %s", a.Options.DatabaseName)
		}
		if a.Options.DatabaseUserName != "auser" {
			t.Errorf("expected auser, got %s", a.Options.DatabaseUserName)
		}
		if a.Options.DatabasePassword != "apass" {
			t.Errorf("expected apass, got %s", a.Options.DatabasePassword)
		}
		if len(a.Options.Alias) != 2 || a.Options.Alias[0] != "www.a.com" || a.Options.Alias[1] != "web.a.com" {
			t.Errorf("aliases wrong or out of order: %v", a.Options.Alias)
		}

		if cfg.Sites[1].Domain != "b.org" || cfg.Sites[1].Options != nil {
			t.Errorf("b.org should be an entry with nil options")
		}
		if cfg.Sites[2].Domain != "default" || cfg.Sites[2].Options != nil {
			t.Errorf("default should be an entry with nil options")
		}

		if cfg.Database.RootPassword != "secret" {
			t.Errorf("expected root password secret, got %s", cfg.Database.RootPassword)
		}
		if cfg.Database.RootPasswordRandom {
			t.Error("root_password_random should default to false")
		}
	})

	t.Run("OrderPreserved", func(t *testing.T) {
		path := writeConfig(t, `
sites:
  z.com:
  m.com:
  a.com:
database:
  root_password_random: true
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		want := []string{"z.com", "m.com", "a.com"}
		for i, domain := range want {
			if cfg.Sites[i].Domain != domain {
				t.Errorf("site %d: expected %s, got %s", i, domain, cfg.Sites[i].Domain)
			}
		}
	})

	t.Run("MissingSites", func(t *testing.T) {
		path := writeConfig(t, `
database:
  root_password: secret
`)
		_, err := Load(path)
		if !errors.Is(err, errors.ErrMissingSites) {
			t.Errorf("expected ErrMissingSites, got %v", err)
		}
	})

	t.Run("MissingDatabase", func(t *testing.T) {
		path := writeConfig(t, `
sites:
  a.com:
`)
		_, err := Load(path)
		if !errors.Is(err, errors.ErrMissingDatabase) {
			t.Errorf("expected ErrMissingDatabase, got %v", err)
		}
	})

	t.Run("SitesNotMapping", func(t *testing.T) {
		path := writeConfig(t, `
sites:
  - a.com
database:
  root_password: secret
`)
		if _, err := Load(path); err == nil {
			t.Error("expected error for sequence sites section")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		path := writeConfig(t, "sites: [unclosed")
		if _, err := Load(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}
