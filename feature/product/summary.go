package product

import (
	"math"
	"sort"

	"abc-product/feature/product/models"

	"github.com/shopspring/decimal"
)

// Summary holds aggregate figures for a product map.
type Summary struct {
	Products      int             `json:"products"`
	WithBarcodes  int             `json:"with_barcodes"`
	NegativeStock int             `json:"negative_stock"`
	NeverSold     int             `json:"never_sold"`
	Groups        map[string]int  `json:"groups"`
	StockValue    decimal.Decimal `json:"stock_value"`
}

// Summarize counts products by the attributes operators usually ask about.
// StockValue is the sum of cost times stock, negatives included. Non-finite stock,
// which only a hand-built Product can carry, is left out of StockValue.
func Summarize(products models.ProductsByKey) Summary {
	s := Summary{
		Products:   len(products),
		Groups:     make(map[string]int),
		StockValue: decimal.Zero,
	}

	for _, p := range products {
		if len(p.Barcodes()) > 0 {
			s.WithBarcodes++
		}
		if p.Stock() < 0 {
			s.NegativeStock++
		}
		if _, ok := p.LastSold(); !ok {
			s.NeverSold++
		}
		if g, ok := p.Group(); ok {
			s.Groups[g]++
		}
		if math.IsNaN(p.Stock()) || math.IsInf(p.Stock(), 0) {
			continue
		}
		s.StockValue = s.StockValue.Add(p.Cost().Mul(decimal.NewFromFloat(p.Stock())))
	}

	return s
}

// SortedKeys returns the product keys in ascending order.
func SortedKeys(products models.ProductsByKey) []string {
	keys := make([]string, 0, len(products))
	for k := range products {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
