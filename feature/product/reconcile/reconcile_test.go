package reconcile

import (
	"errors"
	"fmt"
	"testing"

	"abc-product/feature/product/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maps(keys ...string) (map[string]models.BaseRecord, map[string]models.PostedRecord) {
	base := make(map[string]models.BaseRecord)
	posted := make(map[string]models.PostedRecord)
	for i, k := range keys {
		base[k] = models.BaseRecord{
			Key:         k,
			Description: "Product " + k,
			List:        decimal.NewFromInt(int64(i + 1)),
			Cost:        decimal.NewFromInt(int64(i)),
		}
		posted[k] = models.PostedRecord{Key: k, Stock: float64(i)}
	}
	return base, posted
}

func TestJoin(t *testing.T) {
	keys := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		keys = append(keys, fmt.Sprintf("SKU%03d", i))
	}
	base, posted := maps(keys...)

	products, err := Join(base, posted)
	require.NoError(t, err)
	require.Len(t, products, len(keys))

	for i, k := range keys {
		p, ok := products[k]
		require.True(t, ok, k)
		assert.Equal(t, k, p.Key())
		assert.Equal(t, "Product "+k, p.Description())
		assert.Equal(t, float64(i), p.Stock())
		assert.True(t, decimal.NewFromInt(int64(i+1)).Equal(p.List()))
	}
}

func TestJoin_Empty(t *testing.T) {
	products, err := Join(map[string]models.BaseRecord{}, map[string]models.PostedRecord{})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestJoin_RowCountMismatch(t *testing.T) {
	base, _ := maps("A", "B")
	_, posted := maps("A", "B", "C")

	products, err := Join(base, posted)
	assert.Nil(t, products)
	assert.ErrorIs(t, err, models.ErrRowCountMismatch)

	var rc *models.RowCountError
	require.True(t, errors.As(err, &rc))
	assert.Equal(t, 2, rc.Base)
	assert.Equal(t, 3, rc.Posted)
}

func TestJoin_UnmatchedKey(t *testing.T) {
	base, _ := maps("A", "B", "C")
	_, posted := maps("A", "X", "C")

	products, err := Join(base, posted)
	assert.Nil(t, products)
	assert.ErrorIs(t, err, models.ErrUnmatchedKey)

	var uk *models.UnmatchedKeyError
	require.True(t, errors.As(err, &uk))
	assert.Equal(t, "B", uk.Key)
	assert.Contains(t, err.Error(), "'B'")
}

func TestJoin_UnmatchedKeyIsDeterministic(t *testing.T) {
	base, _ := maps("M", "N", "Z")
	_, posted := maps("P", "Q", "Z")

	for i := 0; i < 20; i++ {
		_, err := Join(base, posted)
		var uk *models.UnmatchedKeyError
		require.True(t, errors.As(err, &uk))
		assert.Equal(t, "M", uk.Key)
	}
}

func TestJoin_MismatchedKeys(t *testing.T) {
	base, posted := maps("A")
	posted["A"] = models.PostedRecord{Key: "corrupted"}

	products, err := Join(base, posted)
	assert.Nil(t, products)
	assert.ErrorIs(t, err, models.ErrMismatchedKeys)
}
