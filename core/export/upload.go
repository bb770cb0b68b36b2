package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"abc-product/core/storage"

	"github.com/minio/minio-go/v7"
)

// UploadResult describes one uploaded export file.
type UploadResult struct {
	Name   string
	Object string
	Size   int64
}

// Upload publishes local export files into the bucket under prefix, creating the bucket
// if it does not exist yet. Files are uploaded in the given order and the first failure
// stops the upload.
func Upload(ctx context.Context, client storage.Client, bucket, prefix, dir string, names []string) ([]UploadResult, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	local := LocalSource{Dir: dir}
	dst := StorageSource{Bucket: bucket, Prefix: prefix}

	results := make([]UploadResult, 0, len(names))
	for _, name := range names {
		res, err := uploadFile(ctx, client, local.Describe(name), bucket, dst.ObjectName(name))
		if err != nil {
			return results, err
		}
		res.Name = name
		results = append(results, res)
	}

	return results, nil
}

func uploadFile(ctx context.Context, client storage.Client, path, bucket, object string) (UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	_, err = client.PutObject(ctx, bucket, object, f, info.Size(), minio.PutObjectOptions{
		ContentType: "text/tab-separated-values",
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to upload %s: %w", filepath.Base(path), err)
	}

	return UploadResult{Object: object, Size: info.Size()}, nil
}
