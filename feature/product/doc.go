// Package product rebuilds inventory products from the accounting package's database export.
//
// The export splits every product across two tab-delimited files that share the product
// key (SKU):
//  1. item.data: description, prices, discount group, barcodes, weight, alternate SKUs.
//  2. item_posted.data: stock on hand and last sale date.
//
// Each file is parsed into partial records (see extract), the two maps are joined by key
// (see reconcile) and every pair becomes an immutable models.Product.
//
// # Components
//
//   - FromExport / FromSource: one-shot parsing for callers and the CLI.
//   - Service: loads through a configured export.Source and caches the catalog.
//   - Handler: exposes read-only HTTP lookups.
//   - Feature: registers the handler with the loader.
//
// # HTTP Endpoints
//
//   - GET /products : Catalog summary.
//   - GET /products/:key : A single product.
package product
