package site

import (
	"strings"
	"testing"

	"github.com/songmash/single-container-wordpress/internal/config"
)

const docRoot = "/var/www/html"

func TestNew(t *testing.T) {
	t.Run("AllOptionsSupplied", func(t *testing.T) {
		s := New(docRoot, "a.com", &config.SiteOptions{
			DatabaseName:     "adb",
			DatabaseUserName: "auser",
			DatabasePassword: "apass",
			Alias:            []string{"www.a.com"},
		})

		if s.Domain != "a.com" {
			t.Errorf("expected a.com, got %s", s.Domain)
		}
		if s.SafeName != "a_com" {
			t.Errorf("expected a_com, got %s", s.SafeName)
		}
		if s.DBName != "adb" || s.DBUser != "auser" || s.DBPassword != "apass" {
			t.Errorf("explicit options not honored: %+v", s)
		}
		if s.Folder != "/var/www/html/a.com" {
			t.Errorf("unexpected folder: %s", s.Folder)
		}
		if len(s.Aliases) != 1 || s.Aliases[0] != "www.a.com" {
			t.Errorf("unexpected aliases: %v", s.Aliases)
		}
	})

	t.Run("NilOptions", func(t *testing.T) {
		s := New(docRoot, "shop.example.org", nil)

		if s.DBName != "shop_example_org" {
			t.Errorf("expected safe-name fallback, got %s", s.DBName)
		}
		if s.DBUser != "shop_example_org" {
			t.Errorf("expected safe-name fallback, got %s", s.DBUser)
		}
		if len(s.DBPassword) != 32 {
			t.Errorf("expected generated 32-char password, got %d chars", len(s.DBPassword))
		}
		if len(s.Aliases) != 0 {
			t.Errorf("expected no aliases, got %v", s.Aliases)
		}
	})

	t.Run("CredentialsNeverEmpty", func(t *testing.T) {
		cases := map[string]*config.SiteOptions{
			"nil options":   nil,
			"empty options": {},
			"name only":     {DatabaseName: "db"},
			"user only":     {DatabaseUserName: "user"},
			"password only": {DatabasePassword: "pass"},
		}

		for name, opts := range cases {
			t.Run(name, func(t *testing.T) {
				s := New(docRoot, "x.com", opts)
				if s.DBName == "" || s.DBUser == "" || s.DBPassword == "" {
					t.Errorf("empty credential after construction: %+v", s)
				}
			})
		}
	})

	t.Run("GeneratedPasswordsDiffer", func(t *testing.T) {
		a := New(docRoot, "a.com", nil)
		b := New(docRoot, "b.com", nil)
		if a.DBPassword == b.DBPassword {
			t.Error("two sites got the same generated password")
		}
	})

	t.Run("IsDefault", func(t *testing.T) {
		if !New(docRoot, "default", nil).IsDefault() {
			t.Error("domain default should be the catch-all")
		}
		if New(docRoot, "a.com", nil).IsDefault() {
			t.Error("a.com should not be the catch-all")
		}
	})
}

func TestDBScript(t *testing.T) {
	s := New(docRoot, "a.com", &config.SiteOptions{
		DatabaseName:     "adb",
		DatabaseUserName: "auser",
		DatabasePassword: "apass",
	})

	script, err := s.DBScript()
	if err != nil {
		t.Fatalf("DBScript failed: %v", err)
	}

	if n := strings.Count(script, "CREATE DATABASE"); n != 1 {
		t.Errorf("expected 1 CREATE DATABASE, got %d", n)
	}
	if n := strings.Count(script, "CREATE USER"); n != 1 {
		t.Errorf("expected 1 CREATE USER, got %d", n)
	}
	if n := strings.Count(script, "GRANT"); n != 1 {
		t.Errorf("expected 1 GRANT, got %d", n)
	}
	if !strings.Contains(script, "adb") || !strings.Contains(script, "auser") {
		t.Errorf("script does not reference site db/user:\n%s", script)
	}
	if !strings.Contains(script, "GRANT ALL ON adb.* TO 'auser'@'%'") {
		t.Errorf("grant does not tie user to database:\n%s", script)
	}
}

func TestVHostConfig(t *testing.T) {
	t.Run("RegularSite", func(t *testing.T) {
		s := New(docRoot, "a.com", &config.SiteOptions{
			Alias: []string{"www.a.com", "web.a.com"},
		})

		conf, err := s.VHostConfig()
		if err != nil {
			t.Fatalf("VHostConfig failed: %v", err)
		}

		if !strings.Contains(conf, "ServerName a.com") {
			t.Error("missing ServerName line")
		}
		if n := strings.Count(conf, "ServerAlias"); n != 2 {
			t.Errorf("expected one ServerAlias per alias, got %d", n)
		}
		if strings.Index(conf, "www.a.com") > strings.Index(conf, "web.a.com") {
			t.Error("alias order not preserved")
		}
	})

	t.Run("DefaultSite", func(t *testing.T) {
		s := New(docRoot, "default", nil)

		conf, err := s.VHostConfig()
		if err != nil {
			t.Fatalf("VHostConfig failed: %v", err)
		}

		if strings.Contains(conf, "ServerName") {
			t.Error("default vhost must have no ServerName line")
		}
		if !strings.Contains(conf, `DocumentRoot "/var/www/html/default"`) {
			t.Error("missing DocumentRoot")
		}
	})
}
