package product_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"abc-product/core/export"
	"abc-product/feature/product"
	"abc-product/feature/product/extract"
	"abc-product/feature/product/models"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	basePath   = "testdata/item.data"
	postedPath = "testdata/item_posted.data"
)

func TestFromExport(t *testing.T) {
	products, err := product.FromExport(basePath, postedPath)
	require.NoError(t, err)
	require.Len(t, products, 2)

	t.Run("123456", func(t *testing.T) {
		p, ok := products["123456"]
		require.True(t, ok)

		lastSold := civil.Date{Year: 2024, Month: 11, Day: 16}
		expected, err := models.NewBuilder().
			WithKey("123456").
			WithDescription("PRODUCT A").
			WithList(decimal.RequireFromString("5.99")).
			WithCost(decimal.RequireFromString("1.23")).
			WithStock(0).
			WithLastSold(lastSold).
			AddAlternateKey("ALT").
			AddBarcode(mustBarcode(t, "0858755000147")).
			Build()
		require.NoError(t, err)

		assert.True(t, expected.Equal(p), "got %+v", p)

		_, hasGroup := p.Group()
		assert.False(t, hasGroup)
		_, hasWeight := p.Weight()
		assert.False(t, hasWeight)
	})

	t.Run("ABC123", func(t *testing.T) {
		p, ok := products["ABC123"]
		require.True(t, ok)

		assert.Equal(t, "PRODUCT B", p.Description())
		assert.True(t, decimal.RequireFromString("8.12").Equal(p.List()))
		assert.True(t, decimal.RequireFromString("5.23").Equal(p.Cost()))
		assert.Equal(t, -6.0, p.Stock())
		assert.Empty(t, p.Barcodes())
		assert.Equal(t, []string{"ALT SKU"}, p.AlternateKeys())

		group, ok := p.Group()
		assert.True(t, ok)
		assert.Equal(t, "A", group)

		_, ok = p.Weight()
		assert.False(t, ok)

		// 05/28/2019 is not an ISO date
		_, ok = p.LastSold()
		assert.False(t, ok)
	})
}

func TestFromExport_MissingFile(t *testing.T) {
	_, err := product.FromExport(filepath.Join(t.TempDir(), "nope.data"), postedPath)
	require.Error(t, err)

	var readErr *models.ReadError
	require.True(t, errors.As(err, &readErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFromExport_RowCountMismatch(t *testing.T) {
	dir := t.TempDir()
	base, err := os.ReadFile(basePath)
	require.NoError(t, err)
	posted, err := os.ReadFile(postedPath)
	require.NoError(t, err)

	// Keep only the first posted row
	firstPosted := posted[:bytes.IndexByte(posted, '\n')+1]

	require.NoError(t, os.WriteFile(filepath.Join(dir, "item.data"), base, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "item_posted.data"), firstPosted, 0o644))

	_, err = product.FromSource(context.Background(), export.LocalSource{Dir: dir}, "item.data", "item_posted.data", extract.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrRowCountMismatch)

	var rcErr *models.RowCountError
	require.True(t, errors.As(err, &rcErr))
	assert.Equal(t, 2, rcErr.Base)
	assert.Equal(t, 1, rcErr.Posted)
}

func TestFromSource_BaseErrorSkipsPosted(t *testing.T) {
	src := newMemSource(map[string]string{
		"item.data": "123456\tONLY TWO COLUMNS\n",
	})

	_, err := product.FromSource(context.Background(), src, "item.data", "item_posted.data", extract.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMissingField)
	assert.Equal(t, 0, src.opens["item_posted.data"])
}
