package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/songmash/single-container-wordpress/internal/config"
	"github.com/songmash/single-container-wordpress/internal/logger"
)

// defaultEnvFile is an optional env file seeding the environment the
// child processes inherit. Ignored when absent.
const defaultEnvFile = "/etc/wp-stack.env"

var (
	configPath string
	envFile    string
	jsonOutput bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wpstack",
	Short: "Multi-site WordPress container provisioner",
	Long: `wpstack is the entrypoint of a single-container multi-site WordPress stack.

It reads a declarative site list, generates database init SQL and Apache
virtual hosts, initializes the database engine, starts the process
supervisor, and bootstraps each site's WordPress installation.`,
}

// Execute runs the root command
func Execute() {
	cobra.OnInitialize(func() {
		logger.Init(verbose)
		loadEnvFile()
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// loadEnvFile loads the optional env file into the process environment,
// from where child processes inherit it.
func loadEnvFile() {
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		logger.Debug("no env file at %s", envFile)
		return
	}
	if err := godotenv.Load(envFile); err != nil {
		logger.Warn("failed to load env file %s: %v", envFile, err)
		return
	}
	logger.Debug("loaded env file %s", envFile)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the site configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile, "Optional env file forwarded to child processes")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
