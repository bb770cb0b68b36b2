package extract

import (
	"context"
	"errors"
	"fmt"
	"io"

	"abc-product/core/barcode"
	"abc-product/core/export"
	"abc-product/core/utils"
	"abc-product/feature/product/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ParseBaseFile parses an item.data file from disk.
func ParseBaseFile(path string, opts Options) (map[string]models.BaseRecord, error) {
	return ReadBase(context.Background(), export.LocalSource{}, path, opts)
}

// ReadBase opens name through src and parses it as item.data.
// The file is closed on every return path.
func ReadBase(ctx context.Context, src export.Source, name string, opts Options) (map[string]models.BaseRecord, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, &models.ReadError{Source: src.Describe(name), Err: err}
	}
	defer rc.Close()

	return parseBase(rc, src.Describe(name), opts)
}

// ParseBase parses item.data rows into partial records keyed by product key.
// A later row with the same key replaces the earlier one unless opts.StrictDuplicates is set.
func ParseBase(r io.Reader, opts Options) (map[string]models.BaseRecord, error) {
	return parseBase(r, "item.data", opts)
}

func parseBase(r io.Reader, source string, opts Options) (map[string]models.BaseRecord, error) {
	reader := export.NewReader(r)
	log := opts.logger().With(zap.String("file", source))
	dups := newDedupe(source, opts)
	records := make(map[string]models.BaseRecord)

	for num := 1; ; num++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &models.ReadError{Source: source, Err: err}
		}

		rec, err := baseRecord(row{fields: fields, num: num}, log)
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

func baseRecord(r row, log *zap.Logger) (models.BaseRecord, error) {
	key, err := r.required(BaseKeyColumn, models.FieldKey)
	if err != nil {
		return models.BaseRecord{}, err
	}
	desc, err := r.required(BaseDescriptionColumn, models.FieldDescription)
	if err != nil {
		return models.BaseRecord{}, err
	}
	barcodeField, err := r.required(BaseBarcodesColumn, models.FieldBarcodes)
	if err != nil {
		return models.BaseRecord{}, err
	}
	list, err := price(r, BaseListColumn, models.FieldList)
	if err != nil {
		return models.BaseRecord{}, err
	}
	cost, err := price(r, BaseCostColumn, models.FieldCost)
	if err != nil {
		return models.BaseRecord{}, err
	}
	weightField, err := r.required(BaseWeightColumn, models.FieldWeight)
	if err != nil {
		return models.BaseRecord{}, err
	}

	rec := models.BaseRecord{
		Key:         key,
		Description: desc,
		Barcodes:    barcode.Normalize(barcodeField),
		List:        list,
		Cost:        cost,
		Weight:      utils.ToOptionalFloat(weightField),
	}

	if rec.Weight != nil && *rec.Weight < 0 {
		rec.Weight = nil
	}
	if rec.Weight == nil && weightField != "" {
		log.Debug("Ignoring unusable weight", zap.Int("row", r.num), zap.String("value", weightField))
	}

	if g := r.optional(BaseGroupColumn); g != "" {
		if group, ok := models.NormalizeGroup(g); ok {
			rec.Group = group
		} else {
			log.Debug("Ignoring invalid discount group", zap.Int("row", r.num), zap.String("value", g))
		}
	}

	for _, col := range BaseAlternateKeyColumns {
		if alt := r.optional(col); alt != "" {
			rec.AlternateKeys = append(rec.AlternateKeys, alt)
		}
	}

	return rec, nil
}

func price(r row, col int, field string) (decimal.Decimal, error) {
	raw, err := r.required(col, field)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := utils.PriceFromString(raw)
	if err != nil {
		return decimal.Zero, &models.ParseError{
			Context: fmt.Sprintf("cannot parse a price for %s in row %d", field, r.num),
			Err:     err,
		}
	}
	return v, nil
}
