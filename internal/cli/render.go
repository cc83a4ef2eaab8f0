package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/songmash/single-container-wordpress/internal/config"
	"github.com/songmash/single-container-wordpress/internal/output"
	"github.com/songmash/single-container-wordpress/internal/provision"
	"github.com/songmash/single-container-wordpress/internal/site"
	"github.com/songmash/single-container-wordpress/internal/template"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the generated SQL and vhost configuration",
	Long: `Render the artifacts provisioning would write, without touching the
filesystem or launching any process.

Prints the database init SQL followed by every vhost block, including the
synthesized default catch-all. Sites without a configured database
password get a fresh one per invocation, so rendered SQL is a preview,
not a transcript of a later run.

Examples:
  wpstack render
  wpstack render --config ./wp-docker-config.yml`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	text, err := renderArtifacts(cfg)
	if err != nil {
		return err
	}

	output.Print("%s", text)
	return nil
}

// renderArtifacts renders every artifact the provisioner would write.
func renderArtifacts(cfg *config.Config) (string, error) {
	docRoot := provision.DefaultPaths().DocRoot

	sites := make([]*site.Site, 0, len(cfg.Sites))
	hasDefault := false
	for _, entry := range cfg.Sites {
		s := site.New(docRoot, entry.Domain, entry.Options)
		if s.IsDefault() {
			hasDefault = true
		}
		sites = append(sites, s)
	}

	var buf strings.Builder

	buf.WriteString("-- database init SQL --\n")
	for _, s := range sites {
		script, err := s.DBScript()
		if err != nil {
			return "", err
		}
		buf.WriteString(script)
	}

	for _, s := range sites {
		conf, err := s.VHostConfig()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, "\n# %s.conf\n%s", s.Domain, conf)
	}

	if !hasDefault {
		conf, err := template.RenderDefaultVHost()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, "\n# default.conf (synthesized)\n%s", conf)
	}

	return buf.String(), nil
}
