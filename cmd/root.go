package cmd

import (
	"fmt"
	"os"

	"abc-product/core/config"
	"abc-product/core/export"
	"abc-product/core/logger"
	"abc-product/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "abc-product",
	Short: "ABC accounting export product parser",
	Long: `abc-product rebuilds inventory products from the ABC accounting database export.
It joins item.data and item_posted.data by SKU and serves or prints the result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console/debug config gives readable ISO8601 output for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger shared by every command.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logg, nil
}

// exportSource builds the configured export source, creating a storage client only
// when the export lives in a bucket.
func exportSource(cfg *config.Config) (export.Source, error) {
	var client storage.Client
	if cfg.Export.Source == export.SourceStorage {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}
	return export.NewSource(cfg.Export, client, cfg.Storage.Bucket)
}
