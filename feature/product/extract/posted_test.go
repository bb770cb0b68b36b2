package extract

import (
	"context"
	"errors"
	"testing"

	"abc-product/core/utils"
	"abc-product/feature/product/models"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParsePostedFile(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	records, err := ParsePostedFile("../testdata/item_posted.data", Options{Logger: zap.New(core)})
	require.NoError(t, err)
	require.Len(t, records, 2)

	a := records["123456"]
	assert.Equal(t, 0.0, a.Stock)
	require.NotNil(t, a.LastSold)
	assert.Equal(t, civil.Date{Year: 2024, Month: 11, Day: 16}, *a.LastSold)

	b := records["ABC123"]
	assert.Equal(t, -6.0, b.Stock)
	assert.Nil(t, b.LastSold)

	assert.Equal(t, 1, logs.FilterMessage("Ignoring unparseable last sold date").Len())
}

func TestParsePosted_StockIsHardFailure(t *testing.T) {
	_, err := ParsePosted(file(
		postedLine(map[int]string{0: "K1", 1: "2024-01-01", 19: "1"}),
		postedLine(map[int]string{0: "K2", 1: "2024-01-01", 19: "lots"}),
	), Options{})

	var pe *models.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Error(), "stock in row 2")
}

func TestParsePosted_NonFiniteStock(t *testing.T) {
	for _, stock := range []string{"NaN", "Inf", "-infinity"} {
		t.Run(stock, func(t *testing.T) {
			_, err := ParsePosted(file(
				postedLine(map[int]string{0: "K1", 1: "2024-11-16", 19: stock}),
			), Options{})

			var pe *models.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Contains(t, pe.Error(), "stock in row 1")
			assert.ErrorIs(t, err, utils.ErrNotFinite)
		})
	}
}

func TestParsePosted_MissingStockColumn(t *testing.T) {
	_, err := ParsePosted(file(line(5, map[int]string{0: "K", 1: "2024-01-01"})), Options{})

	var mf *models.MissingFieldError
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, models.FieldStock, mf.Field)
	assert.Equal(t, 1, mf.Row)
}

func TestParsePosted_LastSoldFormats(t *testing.T) {
	records, err := ParsePosted(file(
		postedLine(map[int]string{0: "ISO", 1: "2019-05-28", 19: "1"}),
		postedLine(map[int]string{0: "EMPTY", 19: "1"}),
		postedLine(map[int]string{0: "US", 1: "05/28/2019", 19: "1"}),
		postedLine(map[int]string{0: "BAD", 1: "2019-13-40", 19: "1"}),
	), Options{})
	require.NoError(t, err)

	require.NotNil(t, records["ISO"].LastSold)
	assert.Equal(t, civil.Date{Year: 2019, Month: 5, Day: 28}, *records["ISO"].LastSold)
	assert.Nil(t, records["EMPTY"].LastSold)
	assert.Nil(t, records["US"].LastSold)
	assert.Nil(t, records["BAD"].LastSold)
}

func TestParsePosted_NegativeStock(t *testing.T) {
	records, err := ParsePosted(file(postedLine(map[int]string{0: "K", 19: "-12.5"})), Options{})
	require.NoError(t, err)
	assert.Equal(t, -12.5, records["K"].Stock)
}

func TestParsePosted_DuplicateKeys(t *testing.T) {
	lines := []string{
		postedLine(map[int]string{0: "K", 19: "1"}),
		postedLine(map[int]string{0: "K", 19: "2"}),
	}

	records, err := ParsePosted(file(lines...), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2.0, records["K"].Stock)

	_, err = ParsePosted(file(lines...), Options{StrictDuplicates: true})
	assert.ErrorIs(t, err, models.ErrDuplicateKey)
}

func TestReadPosted_ClosesSource(t *testing.T) {
	src := newTrackingSource(map[string]string{
		"bad.data": postedLine(map[int]string{0: "K", 19: "x"}) + "\n",
	})

	_, err := ReadPosted(context.Background(), src, "bad.data", Options{})
	require.Error(t, err)
	assert.True(t, src.closed["bad.data"])
}

func TestParsePosted_ReadError(t *testing.T) {
	_, err := ParsePosted(&failingReader{data: "K"}, Options{})
	assert.ErrorIs(t, err, errBoom)
}
