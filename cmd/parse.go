package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"abc-product/core/export"
	"abc-product/feature/product"
	"abc-product/feature/product/extract"
	"abc-product/feature/product/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse and reconcile the export files",
	Long: `Reads item.data and item_posted.data, reconciles them by SKU and reports the result.
Without --base/--posted the configured export source is used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		basePath, _ := cmd.Flags().GetString("base")
		postedPath, _ := cmd.Flags().GetString("posted")
		key, _ := cmd.Flags().GetString("key")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		strict, _ := cmd.Flags().GetBool("strict")

		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		var src export.Source
		baseName, postedName := cfg.Export.BaseFile, cfg.Export.PostedFile
		if basePath != "" || postedPath != "" {
			if basePath == "" || postedPath == "" {
				return fmt.Errorf("--base and --posted must be given together")
			}
			src = export.LocalSource{}
			baseName, postedName = basePath, postedPath
		} else {
			src, err = exportSource(cfg)
			if err != nil {
				return err
			}
		}

		opts := extract.Options{
			Logger:           logg,
			StrictDuplicates: strict || cfg.Export.StrictDuplicates,
		}

		logg.Info("Parsing export",
			zap.String("base", src.Describe(baseName)),
			zap.String("posted", src.Describe(postedName)),
		)

		products, err := product.FromSource(cmd.Context(), src, baseName, postedName, opts)
		if err != nil {
			return fmt.Errorf("failed to reconcile export: %w", err)
		}

		if key != "" {
			p, ok := products[key]
			if !ok {
				return fmt.Errorf("no product with key %q", key)
			}
			if jsonOutput {
				return printJSON(p)
			}
			logProduct(logg, p)
			return nil
		}

		if jsonOutput {
			ordered := make([]models.Product, 0, len(products))
			for _, k := range product.SortedKeys(products) {
				ordered = append(ordered, products[k])
			}
			return printJSON(ordered)
		}

		s := product.Summarize(products)
		logg.Info("Export reconciled",
			zap.Int("products", s.Products),
			zap.Int("with_barcodes", s.WithBarcodes),
			zap.Int("negative_stock", s.NegativeStock),
			zap.Int("never_sold", s.NeverSold),
			zap.Any("groups", s.Groups),
			zap.String("stock_value", s.StockValue.StringFixed(2)),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

func logProduct(logg *zap.Logger, p models.Product) {
	fields := []zap.Field{
		zap.String("key", p.Key()),
		zap.String("description", p.Description()),
		zap.String("list", p.List().String()),
		zap.String("cost", p.Cost().String()),
		zap.Float64("stock", p.Stock()),
		zap.Stringers("barcodes", p.Barcodes()),
		zap.Strings("alternate_keys", p.AlternateKeys()),
	}
	if g, ok := p.Group(); ok {
		fields = append(fields, zap.String("group", g))
	}
	if w, ok := p.Weight(); ok {
		fields = append(fields, zap.Float64("weight", w))
	}
	if d, ok := p.LastSold(); ok {
		fields = append(fields, zap.Stringer("last_sold", d))
	}
	logg.Info("Product", fields...)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	RootCmd.AddCommand(parseCmd)

	parseCmd.Flags().String("base", "", "Path to item.data")
	parseCmd.Flags().String("posted", "", "Path to item_posted.data")
	parseCmd.Flags().String("key", "", "Only report the product with this key")
	parseCmd.Flags().Bool("json", false, "Print products as JSON")
	parseCmd.Flags().Bool("strict", false, "Fail on duplicate keys")
}
