package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/georgemunganga/stockroom-api/internal/config"
	"github.com/georgemunganga/stockroom-api/internal/logger"
)

var configDir string

// rootCmd runs the server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:           "api",
	Short:         "Inventory and account API",
	Long:          `Serves inventory lookups and user registration/login over HTTP, backed by PostgreSQL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding the .env file")
}

// bootstrap loads configuration and builds the logger shared by all commands.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	log, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}
	return cfg, log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		l, logErr := logger.New(&config.LogConfig{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
