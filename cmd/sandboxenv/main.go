// Command sandboxenv bootstraps the sandboxed workbench environment and
// lets it be inspected or mounted.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sandboxenv/internal/bootstrap"
	"sandboxenv/internal/config"
	"sandboxenv/internal/logging"
)

var (
	logger = logging.GetLogger()

	configPath string
	verbose    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "sandboxenv",
	Short:         "Bootstrap the sandboxed workbench environment",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(mountCmd)
}

// boot loads the configuration and runs the bootstrap.
func boot(ctx context.Context) (*config.Config, *bootstrap.Sandbox, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = logging.LevelDebug.String()
	}

	sb, err := bootstrap.Run(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap failed: %w", err)
	}
	return cfg, sb, nil
}

func main() {
	defer logger.Sync() //nolint:errcheck

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
