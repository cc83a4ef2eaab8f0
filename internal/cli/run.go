package cli

import (
	"github.com/spf13/cobra"

	"github.com/songmash/single-container-wordpress/internal/config"
	"github.com/songmash/single-container-wordpress/internal/executor"
	"github.com/songmash/single-container-wordpress/internal/output"
	"github.com/songmash/single-container-wordpress/internal/provision"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Provision the container and block on the supervisor",
	Long: `Run the full provisioning sequence and then block on the supervisor.

The sequence configures site databases and Apache vhosts, initializes the
database engine, starts the supervisor, bootstraps WordPress in every new
site folder, and finally waits on the supervisor. Under normal operation
the wait never returns; this command is the container's main process.

Examples:
  wpstack run
  wpstack run --config /etc/wp-docker-config.yml --verbose`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	builder := provision.NewBuilder(cfg, executor.NewSystemLauncher())
	return orchestrate(builder)
}

// orchestrate runs the provisioning sequence on a prepared builder.
// Split from runRun so tests can drive it with a mock launcher.
func orchestrate(builder *provision.Builder) error {
	output.Info("Configuring LAMP stack...")
	if err := builder.BuildLAMP(); err != nil {
		return err
	}

	output.Info("Starting supervisor...")
	handle, err := builder.StartSupervisor()
	if err != nil {
		return err
	}

	output.Info("Setting up WordPress sites...")
	if err := builder.SetupWordPress(); err != nil {
		return err
	}

	output.Success("Provisioning complete, waiting on supervisor")
	return handle.Wait()
}
