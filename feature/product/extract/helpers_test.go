package extract

import (
	"context"
	"errors"
	"io"
	"strings"

	"abc-product/core/export"
)

// line joins a row of n tab separated columns with the given values set.
func line(n int, cols map[int]string) string {
	fields := make([]string, n)
	for i, v := range cols {
		fields[i] = v
	}
	return strings.Join(fields, "\t")
}

func baseLine(cols map[int]string) string {
	return line(BaseWeightColumn+1, cols)
}

func postedLine(cols map[int]string) string {
	return line(PostedStockColumn+1, cols)
}

func file(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

var errBoom = errors.New("boom")

// failingReader returns some data and then an error.
type failingReader struct {
	data string
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, errBoom
	}
	r.done = true
	return copy(p, r.data), nil
}

// trackingSource serves in-memory files and records whether they were closed.
type trackingSource struct {
	files  map[string]string
	closed map[string]bool
}

func newTrackingSource(files map[string]string) *trackingSource {
	return &trackingSource{files: files, closed: make(map[string]bool)}
}

type trackingCloser struct {
	io.Reader
	onClose func()
}

func (c trackingCloser) Close() error {
	c.onClose()
	return nil
}

func (s *trackingSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	data, ok := s.files[name]
	if !ok {
		return nil, errBoom
	}
	return trackingCloser{Reader: strings.NewReader(data), onClose: func() { s.closed[name] = true }}, nil
}

func (s *trackingSource) Describe(name string) string {
	return "mem://" + name
}

var _ export.Source = (*trackingSource)(nil)
