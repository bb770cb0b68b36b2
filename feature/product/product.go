package product

import (
	"context"

	"abc-product/core/export"
	"abc-product/feature/product/extract"
	"abc-product/feature/product/models"
	"abc-product/feature/product/reconcile"
)

// FromExport builds the product map from an item.data and an item_posted.data file.
//
// Required fields missing from a row, unparseable prices or stock, and disagreement
// between the two files are errors. Unparseable weights, last sale dates and
// barcodes are treated as absent.
func FromExport(basePath, postedPath string) (models.ProductsByKey, error) {
	return FromSource(context.Background(), export.LocalSource{}, basePath, postedPath, extract.Options{})
}

// FromSource is FromExport reading both files through src.
// The base file is fully parsed before the posted file is opened.
func FromSource(ctx context.Context, src export.Source, baseName, postedName string, opts extract.Options) (models.ProductsByKey, error) {
	base, err := extract.ReadBase(ctx, src, baseName, opts)
	if err != nil {
		return nil, err
	}

	posted, err := extract.ReadPosted(ctx, src, postedName, opts)
	if err != nil {
		return nil, err
	}

	return reconcile.Join(base, posted)
}
