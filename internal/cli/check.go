package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/songmash/single-container-wordpress/internal/config"
	"github.com/songmash/single-container-wordpress/internal/output"
	"github.com/songmash/single-container-wordpress/internal/provision"
	"github.com/songmash/single-container-wordpress/internal/site"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and show resolved sites",
	Long: `Load and validate the site configuration without provisioning anything.

Verifies that both required sections are present and that the database
root password is resolvable, then reports every site with its resolved
database name, user, aliases, and application folder.

Examples:
  wpstack check
  wpstack check --config ./wp-docker-config.yml --json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// siteReport is one row of the check output.
type siteReport struct {
	Domain   string   `json:"domain"`
	Default  bool     `json:"default"`
	DBName   string   `json:"db_name"`
	DBUser   string   `json:"db_user"`
	Aliases  []string `json:"aliases,omitempty"`
	Folder   string   `json:"folder"`
	Password string   `json:"password"` // "configured" or "generated", never the value
}

// checkReport is the full check output.
type checkReport struct {
	ConfigPath   string       `json:"config_path"`
	RootPassword string       `json:"root_password"` // "configured" or "generated"
	Sites        []siteReport `json:"sites"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	report, err := buildCheckReport(configPath, cfg)
	if err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(report)
	}

	headers := []string{"DOMAIN", "DATABASE", "DB USER", "PASSWORD", "ALIASES", "FOLDER"}
	rows := make([][]string, 0, len(report.Sites))
	for _, s := range report.Sites {
		domain := s.Domain
		if s.Default {
			domain += " (catch-all)"
		}
		rows = append(rows, []string{
			domain,
			s.DBName,
			s.DBUser,
			s.Password,
			strings.Join(s.Aliases, ","),
			s.Folder,
		})
	}
	output.Table(headers, rows)
	output.Success("Config OK: %d sites, root password %s", len(report.Sites), report.RootPassword)
	return nil
}

// buildCheckReport validates the config and resolves every site.
func buildCheckReport(path string, cfg *config.Config) (*checkReport, error) {
	// Fails when neither root_password nor root_password_random is set.
	if _, err := provision.ResolveRootPassword(cfg.Database); err != nil {
		return nil, err
	}
	rootSource := "configured"
	if cfg.Database.RootPasswordRandom {
		rootSource = "generated"
	}

	docRoot := provision.DefaultPaths().DocRoot
	report := &checkReport{
		ConfigPath:   path,
		RootPassword: rootSource,
		Sites:        make([]siteReport, 0, len(cfg.Sites)),
	}

	for _, entry := range cfg.Sites {
		passwordSource := "generated"
		if entry.Options != nil && entry.Options.DatabasePassword != "" {
			passwordSource = "configured"
		}

		s := site.New(docRoot, entry.Domain, entry.Options)
		report.Sites = append(report.Sites, siteReport{
			Domain:   s.Domain,
			Default:  s.IsDefault(),
			DBName:   s.DBName,
			DBUser:   s.DBUser,
			Aliases:  s.Aliases,
			Folder:   s.Folder,
			Password: passwordSource,
		})
	}

	return report, nil
}
