package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/songmash/single-container-wordpress/internal/errors"
)

// DefaultPath is where the container image mounts the site configuration.
const DefaultPath = "/etc/wp-docker-config.yml"

// Config is the full parsed configuration document.
type Config struct {
	Sites    SiteList
	Database DatabaseSettings
}

// SiteOptions holds the per-site overrides from the sites section.
// Every field is optional; absent values fall back to defaults derived
// from the domain.
type SiteOptions struct {
	DatabaseName     string   `yaml:"database_name"`
	DatabaseUserName string   `yaml:"database_user_name"`
	DatabasePassword string   `yaml:"database_password"`
	Alias            []string `yaml:"alias"`
}

// SiteEntry is one entry of the sites mapping. Options is nil when the
// entry's value is null or empty in the document.
type SiteEntry struct {
	Domain  string
	Options *SiteOptions
}

// SiteList preserves the document order of the sites mapping.
type SiteList []SiteEntry

// UnmarshalYAML decodes a YAML mapping into an ordered list of entries.
// Decoding into a Go map would lose the document order, which the
// generated artifacts follow.
func (l *SiteList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("sites section must be a mapping, got %s", kindName(node.Kind))
	}

	entries := make(SiteList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		value := node.Content[i+1]

		entry := SiteEntry{Domain: key.Value}
		if value.Tag != "!!null" {
			opts := &SiteOptions{}
			if err := value.Decode(opts); err != nil {
				return fmt.Errorf("invalid options for site %s: %w", key.Value, err)
			}
			entry.Options = opts
		}
		entries = append(entries, entry)
	}

	*l = entries
	return nil
}

// DatabaseSettings configures the database engine's root credential.
type DatabaseSettings struct {
	RootPasswordRandom bool   `yaml:"root_password_random"`
	RootPassword       string `yaml:"root_password"`
}

// document mirrors the on-disk layout with pointer fields so a missing
// section can be told apart from an empty one.
type document struct {
	Sites    *SiteList         `yaml:"sites"`
	Database *DatabaseSettings `yaml:"database"`
}

// Load reads and validates the configuration document at path.
// Both the sites and database sections are required.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if doc.Sites == nil {
		return nil, errors.ErrMissingSites
	}
	if doc.Database == nil {
		return nil, errors.ErrMissingDatabase
	}

	return &Config{
		Sites:    *doc.Sites,
		Database: *doc.Database,
	}, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
