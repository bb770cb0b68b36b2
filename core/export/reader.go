package export

import (
	"encoding/csv"
	"io"
)

// Delimiter separates fields in both export files.
const Delimiter = '\t'

// NewReader returns a csv.Reader for an export file. Every row is data; rows may have
// any number of fields so that short rows surface as missing fields rather than
// format errors.
func NewReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}
