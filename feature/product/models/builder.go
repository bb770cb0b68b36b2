package models

import (
	"slices"
	"strings"

	"abc-product/core/barcode"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Builder accumulates Product fields and validates them once in Build.
// Required fields are key, description, list, cost and stock.
type Builder struct {
	key           *string
	description   *string
	barcodes      []barcode.EAN13
	list          *decimal.Decimal
	cost          *decimal.Decimal
	stock         *float64
	group         string
	weight        *float64
	lastSold      *civil.Date
	alternateKeys []string
}

// NewBuilder returns a Builder with every field unset.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithKey sets the product key.
func (b *Builder) WithKey(key string) *Builder {
	b.key = &key
	return b
}

// WithDescription sets the product description.
func (b *Builder) WithDescription(desc string) *Builder {
	b.description = &desc
	return b
}

// WithBarcodes replaces the barcode list.
func (b *Builder) WithBarcodes(codes []barcode.EAN13) *Builder {
	b.barcodes = slices.Clone(codes)
	return b
}

// AddBarcode appends one barcode.
func (b *Builder) AddBarcode(code barcode.EAN13) *Builder {
	b.barcodes = append(b.barcodes, code)
	return b
}

// WithList sets the list price.
func (b *Builder) WithList(list decimal.Decimal) *Builder {
	b.list = &list
	return b
}

// WithCost sets the cost price.
func (b *Builder) WithCost(cost decimal.Decimal) *Builder {
	b.cost = &cost
	return b
}

// WithStock sets the stock level.
func (b *Builder) WithStock(stock float64) *Builder {
	b.stock = &stock
	return b
}

// WithWeight sets the weight in pounds.
func (b *Builder) WithWeight(weight float64) *Builder {
	b.weight = &weight
	return b
}

// WithGroup sets the discount group. Only A-Z and a-z are accepted, lowercase is
// stored uppercase. Any other rune leaves the builder untouched and returns nil, false.
func (b *Builder) WithGroup(group rune) (*Builder, bool) {
	g, ok := NormalizeGroup(string(group))
	if !ok {
		return nil, false
	}
	b.group = g
	return b, true
}

// WithLastSold sets the last sale date.
func (b *Builder) WithLastSold(date civil.Date) *Builder {
	b.lastSold = &date
	return b
}

// WithAlternateKeys replaces the alternate key list.
func (b *Builder) WithAlternateKeys(keys []string) *Builder {
	b.alternateKeys = slices.Clone(keys)
	return b
}

// AddAlternateKey appends one alternate key. Duplicates are kept.
func (b *Builder) AddAlternateKey(key string) *Builder {
	b.alternateKeys = append(b.alternateKeys, key)
	return b
}

// Build validates the accumulated fields and returns the Product.
// The first unset required field is reported as a *MissingFieldError with row 0.
func (b *Builder) Build() (Product, error) {
	switch {
	case b.key == nil:
		return Product{}, &MissingFieldError{Field: FieldKey}
	case b.description == nil:
		return Product{}, &MissingFieldError{Field: FieldDescription}
	case b.list == nil:
		return Product{}, &MissingFieldError{Field: FieldList}
	case b.cost == nil:
		return Product{}, &MissingFieldError{Field: FieldCost}
	case b.stock == nil:
		return Product{}, &MissingFieldError{Field: FieldStock}
	}

	p := Product{
		key:           *b.key,
		description:   *b.description,
		barcodes:      slices.Clone(b.barcodes),
		list:          *b.list,
		cost:          *b.cost,
		stock:         *b.stock,
		group:         b.group,
		alternateKeys: slices.Clone(b.alternateKeys),
	}
	if b.weight != nil {
		w := *b.weight
		p.weight = &w
	}
	if b.lastSold != nil {
		d := *b.lastSold
		p.lastSold = &d
	}
	return p, nil
}

// NormalizeGroup validates a discount group. It must be exactly one ASCII letter;
// the result is uppercase.
func NormalizeGroup(s string) (string, bool) {
	if len(s) != 1 {
		return "", false
	}
	c := s[0]
	if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
		return "", false
	}
	return strings.ToUpper(s), true
}
