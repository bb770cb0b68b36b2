package extract

import (
	"abc-product/feature/product/models"

	"go.uber.org/zap"
)

// Options tunes extraction.
type Options struct {
	// Logger receives soft parse failures (debug) and duplicate keys (warn). Nil discards.
	Logger *zap.Logger
	// StrictDuplicates fails with a *models.DuplicateKeyError when a key repeats.
	// Otherwise the later row replaces the earlier one.
	StrictDuplicates bool
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// row is one record of an export file with its 1-indexed position.
type row struct {
	fields []string
	num    int
}

func (r row) required(col int, field string) (string, error) {
	if col >= len(r.fields) {
		return "", &models.MissingFieldError{Field: field, Row: r.num}
	}
	return r.fields[col], nil
}

func (r row) optional(col int) string {
	if col >= len(r.fields) {
		return ""
	}
	return r.fields[col]
}

// dedupe tracks the row each key was last seen on.
type dedupe struct {
	file string
	opts Options
	seen map[string]int
}

func newDedupe(file string, opts Options) *dedupe {
	return &dedupe{file: file, opts: opts, seen: make(map[string]int)}
}

// check records key at row and reports a duplicate according to the options.
func (d *dedupe) check(key string, rowNum int) error {
	prev, exists := d.seen[key]
	d.seen[key] = rowNum
	if !exists {
		return nil
	}
	if d.opts.StrictDuplicates {
		return &models.DuplicateKeyError{Key: key, FirstRow: prev, Row: rowNum}
	}
	d.opts.logger().Warn("Duplicate key, keeping later row",
		zap.String("file", d.file),
		zap.String("key", key),
		zap.Int("previous_row", prev),
		zap.Int("row", rowNum),
	)
	return nil
}
