package models

import (
	"slices"

	"abc-product/core/barcode"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// BaseRecord holds the fields parsed from one row of item.data.
type BaseRecord struct {
	Key           string
	Description   string
	Barcodes      []barcode.EAN13
	List          decimal.Decimal
	Cost          decimal.Decimal
	Group         string
	Weight        *float64
	AlternateKeys []string
}

// PostedRecord holds the fields parsed from one row of item_posted.data.
type PostedRecord struct {
	Key      string
	Stock    float64
	LastSold *civil.Date
}

// Assemble merges the base and posted halves of a product. The keys must match.
// Slices and pointers are copied so the Product shares nothing with the records.
func Assemble(base BaseRecord, posted PostedRecord) (Product, error) {
	if base.Key != posted.Key {
		return Product{}, ErrMismatchedKeys
	}

	p := Product{
		key:           base.Key,
		description:   base.Description,
		barcodes:      slices.Clone(base.Barcodes),
		list:          base.List,
		cost:          base.Cost,
		stock:         posted.Stock,
		group:         base.Group,
		alternateKeys: slices.Clone(base.AlternateKeys),
	}
	if base.Weight != nil {
		w := *base.Weight
		p.weight = &w
	}
	if posted.LastSold != nil {
		d := *posted.LastSold
		p.lastSold = &d
	}
	return p, nil
}
