package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyNumber is returned when nothing numeric is left after sanitizing.
	ErrEmptyNumber = errors.New("no digits left after sanitizing")
	// ErrNotFinite is returned for NaN and infinities, which ParseFloat accepts.
	ErrNotFinite = errors.New("number is not finite")
)

// SanitizeNumber keeps only ASCII digits and '.' characters.
func SanitizeNumber(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PriceFromString converts a loosely formatted money string into an exact decimal.
// Every character that is not a digit or a decimal point is discarded first, so
// "$1,234.50 ea" parses as 1234.50. A string with two decimal points fails.
func PriceFromString(s string) (decimal.Decimal, error) {
	cleaned := SanitizeNumber(s)
	if cleaned == "" {
		return decimal.Zero, ErrEmptyNumber
	}
	return decimal.NewFromString(cleaned)
}

// FiniteFloat parses a plain float without any cleanup and rejects NaN and infinities.
func FiniteFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotFinite
	}
	return f, nil
}

// ToOptionalFloat is FiniteFloat reporting absence instead of an error.
func ToOptionalFloat(s string) *float64 {
	f, err := FiniteFloat(s)
	if err != nil {
		return nil
	}
	return &f
}
