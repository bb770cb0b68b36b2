package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"abc-product/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source opens export files by name.
type Source interface {
	// Open returns a reader for the named file. Callers must close it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Describe returns a human readable location for the named file.
	Describe(name string) string
}

// LocalSource reads export files from a directory.
type LocalSource struct {
	Dir string
}

// Open implements Source.
func (s LocalSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(s.Describe(name))
}

// Describe implements Source.
func (s LocalSource) Describe(name string) string {
	if s.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// StorageSource reads export files from an object storage bucket.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// Open implements Source.
func (s StorageSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, s.ObjectName(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", s.Describe(name), err)
	}
	return obj, nil
}

// ObjectName returns the object key for the named file.
func (s StorageSource) ObjectName(name string) string {
	if s.Prefix == "" {
		return name
	}
	return path.Join(s.Prefix, name)
}

// Describe implements Source.
func (s StorageSource) Describe(name string) string {
	return fmt.Sprintf("s3://%s/%s", s.Bucket, s.ObjectName(name))
}

// NewSource picks a Source from configuration. client may be nil for local sources.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceLocal, "":
		return LocalSource{Dir: cfg.Dir}, nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("export source %q requires a storage client", cfg.Source)
		}
		return StorageSource{Client: client, Bucket: bucket, Prefix: cfg.Prefix}, nil
	default:
		return nil, fmt.Errorf("unknown export source %q", cfg.Source)
	}
}
