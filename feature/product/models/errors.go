package models

import (
	"errors"
	"fmt"
)

// Field names reported by MissingFieldError.
const (
	FieldKey         = "key"
	FieldDescription = "description"
	FieldBarcodes    = "barcodes"
	FieldList        = "list"
	FieldCost        = "cost"
	FieldWeight      = "weight"
	FieldStock       = "stock"
	FieldLastSold    = "last_sold"
)

// Sentinel errors for product parsing and reconciliation.
var (
	// ErrMissingField indicates a required field was never supplied.
	ErrMissingField = errors.New("missing field")

	// ErrMismatchedKeys indicates base and posted data for one product disagree on the key.
	ErrMismatchedKeys = errors.New("base and posted records have different keys")

	// ErrRowCountMismatch indicates the two export files describe a different number of products.
	ErrRowCountMismatch = errors.New("item.data and item_posted.data have a different number of items")

	// ErrUnmatchedKey indicates a key from one export file is absent from the other.
	ErrUnmatchedKey = errors.New("unmatched key")

	// ErrDuplicateKey indicates a key appears on more than one row of the same file.
	ErrDuplicateKey = errors.New("duplicate key")
)

// MissingFieldError reports a required field absent from a row. Row is 1-indexed;
// row 0 means the field was missing from a Builder rather than a file.
type MissingFieldError struct {
	Field string
	Row   int
}

// Error implements the error interface
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field `%s` in row %d", e.Field, e.Row)
}

// Is implements errors.Is support
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// RowCountError reports differing product counts between the two export files.
type RowCountError struct {
	Base   int
	Posted int
}

// Error implements the error interface
func (e *RowCountError) Error() string {
	return fmt.Sprintf("%s (base=%d, posted=%d)", ErrRowCountMismatch.Error(), e.Base, e.Posted)
}

// Is implements errors.Is support
func (e *RowCountError) Is(target error) bool {
	return target == ErrRowCountMismatch
}

// UnmatchedKeyError names a base key with no posted counterpart.
type UnmatchedKeyError struct {
	Key string
}

// Error implements the error interface
func (e *UnmatchedKeyError) Error() string {
	return fmt.Sprintf("item_posted.data file has no product with key '%s'", e.Key)
}

// Is implements errors.Is support
func (e *UnmatchedKeyError) Is(target error) bool {
	return target == ErrUnmatchedKey
}

// DuplicateKeyError reports a key repeated within one file.
type DuplicateKeyError struct {
	Key      string
	FirstRow int
	Row      int
}

// Error implements the error interface
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("key '%s' in row %d was already defined in row %d", e.Key, e.Row, e.FirstRow)
}

// Is implements errors.Is support
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// ReadError wraps a failure of the underlying delimited-row reader.
type ReadError struct {
	Source string
	Err    error
}

// Error implements the error interface
func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Source, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError covers value conversion failures where the row is known but no
// dedicated kind exists. Context names the field and row.
type ParseError struct {
	Context string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Err == nil {
		return e.Context
	}
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}
