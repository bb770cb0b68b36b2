// Package reconcile joins the partial records parsed from item.data and
// item_posted.data into complete products.
package reconcile

import (
	"fmt"
	"sort"

	"abc-product/feature/product/models"
)

// Join merges base and posted records that share a key into products.
//
// Both exports must describe the same set of products: differing counts fail with a
// *models.RowCountError and a base key without a posted counterpart fails with a
// *models.UnmatchedKeyError. Keys are visited in sorted order so the reported error
// is deterministic. Nothing is returned when any product fails.
func Join(base map[string]models.BaseRecord, posted map[string]models.PostedRecord) (models.ProductsByKey, error) {
	if len(base) != len(posted) {
		return nil, &models.RowCountError{Base: len(base), Posted: len(posted)}
	}

	keys := make([]string, 0, len(base))
	for key := range base {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	products := make(models.ProductsByKey, len(base))
	for _, key := range keys {
		p, ok := posted[key]
		if !ok {
			return nil, &models.UnmatchedKeyError{Key: key}
		}

		product, err := models.Assemble(base[key], p)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", key, err)
		}
		products[key] = product
	}

	return products, nil
}
