package barcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/boombuler/barcode/ean"
)

const (
	// Length is the number of digits in a normalized code, check digit included.
	Length = 13
	// MinRunLength is the shortest digit run treated as a real code.
	MinRunLength = 11
	// placeholder stands in for a check digit the export left out.
	placeholder = "0"
)

var (
	// ErrNotNumeric is returned when a code contains anything other than digits.
	ErrNotNumeric = errors.New("barcode is not numeric")
	// ErrInvalidLength is returned when a code is neither 12 nor 13 digits long.
	ErrInvalidLength = errors.New("barcode has invalid length")
)

// EAN13 is a 13 digit code whose last digit is a valid check digit.
type EAN13 struct {
	code string
}

// String returns the 13 digits.
func (e EAN13) String() string {
	return e.code
}

// CheckDigit returns the trailing check digit.
func (e EAN13) CheckDigit() int {
	if e.code == "" {
		return 0
	}
	return int(e.code[len(e.code)-1] - '0')
}

// MarshalText implements encoding.TextMarshaler.
func (e EAN13) MarshalText() ([]byte, error) {
	return []byte(e.code), nil
}

// Parse accepts only a 13 digit code with a correct check digit.
func Parse(code string) (EAN13, error) {
	if !isDigits(code) {
		return EAN13{}, ErrNotNumeric
	}
	if len(code) != Length {
		return EAN13{}, fmt.Errorf("%w: %d", ErrInvalidLength, len(code))
	}
	if _, err := ean.Encode(code); err != nil {
		return EAN13{}, fmt.Errorf("invalid ean13 %q: %w", code, err)
	}
	return EAN13{code: code}, nil
}

// ParseNonStrict accepts a 12 digit UPC-A or 13 digit EAN-13 code and recomputes
// the trailing check digit instead of rejecting a wrong one. A 12 digit code is
// zero-prefixed. Anything else fails.
func ParseNonStrict(code string) (EAN13, error) {
	if !isDigits(code) {
		return EAN13{}, ErrNotNumeric
	}

	switch len(code) {
	case Length - 1:
		code = "0" + code
	case Length:
	default:
		return EAN13{}, fmt.Errorf("%w: %d", ErrInvalidLength, len(code))
	}

	// Dropping the last digit lets the encoder compute a fresh one.
	encoded, err := ean.Encode(code[:Length-1])
	if err != nil {
		return EAN13{}, fmt.Errorf("invalid ean13 %q: %w", code, err)
	}
	content := encoded.Content()
	if len(content) != Length {
		return EAN13{}, fmt.Errorf("%w: encoder returned %d digits", ErrInvalidLength, len(content))
	}
	return EAN13{code: content}, nil
}

// NormalizeRun classifies a single digit run by length and repairs it when possible.
// Runs shorter than MinRunLength are dead codes; 11 digit runs are missing their
// check digit.
func NormalizeRun(run string) (EAN13, bool) {
	switch {
	case len(run) < MinRunLength:
		return EAN13{}, false
	case len(run) == MinRunLength:
		run += placeholder
	}

	code, err := ParseNonStrict(run)
	if err != nil {
		return EAN13{}, false
	}
	return code, true
}

// Normalize parses a comma separated barcode field. Characters other than digits and
// commas are stripped first; runs that cannot be repaired are dropped.
func Normalize(field string) []EAN13 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' {
			return r
		}
		return -1
	}, field)

	var codes []EAN13
	for _, run := range strings.Split(cleaned, ",") {
		if code, ok := NormalizeRun(run); ok {
			codes = append(codes, code)
		}
	}
	return codes
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
