package product_test

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"abc-product/core/barcode"

	"github.com/stretchr/testify/require"
)

func mustBarcode(t *testing.T, code string) barcode.EAN13 {
	t.Helper()
	b, err := barcode.Parse(code)
	require.NoError(t, err)
	return b
}

// memSource serves in-memory export files and counts opens per name.
type memSource struct {
	mu    sync.Mutex
	files map[string]string
	opens map[string]int
}

func newMemSource(files map[string]string) *memSource {
	return &memSource{files: files, opens: make(map[string]int)}
}

// fixtureSource serves the testdata fixtures under the default export names.
func fixtureSource(t *testing.T) *memSource {
	t.Helper()
	base, err := os.ReadFile(basePath)
	require.NoError(t, err)
	posted, err := os.ReadFile(postedPath)
	require.NoError(t, err)
	return newMemSource(map[string]string{
		"item.data":        string(base),
		"item_posted.data": string(posted),
	})
}

func (s *memSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opens[name]++
	data, ok := s.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(strings.NewReader(data)), nil
}

func (s *memSource) Describe(name string) string {
	return "mem://" + name
}

func (s *memSource) openCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opens[name]
}
