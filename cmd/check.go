package cmd

import (
	"fmt"

	"abc-product/core/export"
	"abc-product/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the export files exist in the storage bucket",
	Long: `Verifies the configured bucket holds item.data and item_posted.data under the export prefix.
With --fix, missing files are uploaded from the local export directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		names := []string{cfg.Export.BaseFile, cfg.Export.PostedFile}
		logg.Info("Checking export objects...",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", cfg.Export.Prefix),
		)

		missing, err := export.CheckObjects(ctx, client, cfg.Storage.Bucket, cfg.Export.Prefix, names)
		if err != nil {
			return fmt.Errorf("export check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Export is complete.")
			return nil
		}

		logg.Warn("Missing export files detected", zap.Strings("missing", missing))
		if !fixFlag {
			logg.Info("Run with --fix to upload them from the local export directory.", zap.String("dir", cfg.Export.Dir))
			return fmt.Errorf("%d export file(s) missing", len(missing))
		}

		logg.Info("Uploading missing files...")
		results, err := export.Upload(ctx, client, cfg.Storage.Bucket, cfg.Export.Prefix, cfg.Export.Dir, missing)
		if err != nil {
			return fmt.Errorf("failed to upload export: %w", err)
		}
		for _, r := range results {
			logg.Info("Uploaded", zap.String("file", r.Name), zap.String("object", r.Object), zap.Int64("size", r.Size))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&fixFlag, "fix", false, "Upload missing files from the local export directory")
}
