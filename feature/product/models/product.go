package models

import (
	"encoding/json"
	"slices"

	"abc-product/core/barcode"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Product is an inventory item as described by the accounting export.
// It is immutable; use ToBuilder to derive a modified copy.
type Product struct {
	key           string
	description   string
	barcodes      []barcode.EAN13
	list          decimal.Decimal
	cost          decimal.Decimal
	stock         float64
	group         string
	weight        *float64
	lastSold      *civil.Date
	alternateKeys []string
}

// ProductsByKey maps a product key (the export's SKU) to its Product.
type ProductsByKey map[string]Product

// Key returns the unique product identifier.
func (p Product) Key() string { return p.key }

// Description returns the product description.
func (p Product) Description() string { return p.description }

// Barcodes returns a copy of the normalized barcodes in export order.
func (p Product) Barcodes() []barcode.EAN13 { return slices.Clone(p.barcodes) }

// List returns the list price.
func (p Product) List() decimal.Decimal { return p.list }

// Cost returns the cost price.
func (p Product) Cost() decimal.Decimal { return p.cost }

// Stock returns the on-hand quantity. Negative values are backorders or adjustments.
func (p Product) Stock() float64 { return p.stock }

// Group returns the discount group letter (A-Z) if one is set.
func (p Product) Group() (string, bool) {
	return p.group, p.group != ""
}

// Weight returns the weight in pounds if one is set.
func (p Product) Weight() (float64, bool) {
	if p.weight == nil {
		return 0, false
	}
	return *p.weight, true
}

// LastSold returns the date the product was last sold if known.
func (p Product) LastSold() (civil.Date, bool) {
	if p.lastSold == nil {
		return civil.Date{}, false
	}
	return *p.lastSold, true
}

// AlternateKeys returns a copy of the alternate keys in export order.
func (p Product) AlternateKeys() []string { return slices.Clone(p.alternateKeys) }

// Equal reports whether two products carry the same values. Decimals are compared
// numerically, so 5.9 and 5.90 are equal.
func (p Product) Equal(o Product) bool {
	if p.key != o.key || p.description != o.description || p.stock != o.stock || p.group != o.group {
		return false
	}
	if !p.list.Equal(o.list) || !p.cost.Equal(o.cost) {
		return false
	}
	if (p.weight == nil) != (o.weight == nil) || (p.weight != nil && *p.weight != *o.weight) {
		return false
	}
	if (p.lastSold == nil) != (o.lastSold == nil) || (p.lastSold != nil && *p.lastSold != *o.lastSold) {
		return false
	}
	return slices.Equal(p.barcodes, o.barcodes) && slices.Equal(p.alternateKeys, o.alternateKeys)
}

// ToBuilder returns a Builder seeded with every value of p.
func (p Product) ToBuilder() *Builder {
	b := NewBuilder().
		WithKey(p.key).
		WithDescription(p.description).
		WithBarcodes(p.barcodes).
		WithList(p.list).
		WithCost(p.cost).
		WithStock(p.stock).
		WithAlternateKeys(p.alternateKeys)
	b.group = p.group
	if p.weight != nil {
		b.WithWeight(*p.weight)
	}
	if p.lastSold != nil {
		b.WithLastSold(*p.lastSold)
	}
	return b
}

type productJSON struct {
	Key           string          `json:"key"`
	Description   string          `json:"description"`
	Barcodes      []barcode.EAN13 `json:"barcodes"`
	List          decimal.Decimal `json:"list"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         float64         `json:"stock"`
	Group         *string         `json:"group"`
	Weight        *float64        `json:"weight"`
	LastSold      *civil.Date     `json:"last_sold"`
	AlternateKeys []string        `json:"alternate_keys"`
}

// MarshalJSON implements json.Marshaler. Absent optional fields encode as null.
func (p Product) MarshalJSON() ([]byte, error) {
	out := productJSON{
		Key:           p.key,
		Description:   p.description,
		Barcodes:      p.barcodes,
		List:          p.list,
		Cost:          p.cost,
		Stock:         p.stock,
		Weight:        p.weight,
		LastSold:      p.lastSold,
		AlternateKeys: p.alternateKeys,
	}
	if out.Barcodes == nil {
		out.Barcodes = []barcode.EAN13{}
	}
	if out.AlternateKeys == nil {
		out.AlternateKeys = []string{}
	}
	if g, ok := p.Group(); ok {
		out.Group = &g
	}
	return json.Marshal(out)
}
