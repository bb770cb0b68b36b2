package extract

import (
	"context"
	"errors"
	"fmt"
	"io"

	"abc-product/core/export"
	"abc-product/core/utils"
	"abc-product/feature/product/models"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"
)

// ParsePostedFile parses an item_posted.data file from disk.
func ParsePostedFile(path string, opts Options) (map[string]models.PostedRecord, error) {
	return ReadPosted(context.Background(), export.LocalSource{}, path, opts)
}

// ReadPosted opens name through src and parses it as item_posted.data.
// The file is closed on every return path.
func ReadPosted(ctx context.Context, src export.Source, name string, opts Options) (map[string]models.PostedRecord, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, &models.ReadError{Source: src.Describe(name), Err: err}
	}
	defer rc.Close()

	return parsePosted(rc, src.Describe(name), opts)
}

// ParsePosted parses item_posted.data rows into partial records keyed by product key.
func ParsePosted(r io.Reader, opts Options) (map[string]models.PostedRecord, error) {
	return parsePosted(r, "item_posted.data", opts)
}

func parsePosted(r io.Reader, source string, opts Options) (map[string]models.PostedRecord, error) {
	reader := export.NewReader(r)
	log := opts.logger().With(zap.String("file", source))
	dups := newDedupe(source, opts)
	records := make(map[string]models.PostedRecord)

	for num := 1; ; num++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &models.ReadError{Source: source, Err: err}
		}

		rec, err := postedRecord(row{fields: fields, num: num}, log)
		if err != nil {
			return nil, err
		}
		if err := dups.check(rec.Key, num); err != nil {
			return nil, err
		}
		records[rec.Key] = rec
	}

	return records, nil
}

func postedRecord(r row, log *zap.Logger) (models.PostedRecord, error) {
	key, err := r.required(PostedKeyColumn, models.FieldKey)
	if err != nil {
		return models.PostedRecord{}, err
	}
	stockField, err := r.required(PostedStockColumn, models.FieldStock)
	if err != nil {
		return models.PostedRecord{}, err
	}
	// Stock has no fallback, unlike weight and last sold.
	stock, err := utils.FiniteFloat(stockField)
	if err != nil {
		return models.PostedRecord{}, &models.ParseError{
			Context: fmt.Sprintf("cannot parse stock in row %d of posted items", r.num),
			Err:     err,
		}
	}
	lastSoldField, err := r.required(PostedLastSoldColumn, models.FieldLastSold)
	if err != nil {
		return models.PostedRecord{}, err
	}

	rec := models.PostedRecord{Key: key, Stock: stock}
	if d, err := civil.ParseDate(lastSoldField); err == nil {
		rec.LastSold = &d
	} else if lastSoldField != "" {
		log.Debug("Ignoring unparseable last sold date", zap.Int("row", r.num), zap.String("value", lastSoldField))
	}

	return rec, nil
}
