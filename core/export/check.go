package export

import (
	"context"
	"fmt"

	"abc-product/core/storage"

	"github.com/minio/minio-go/v7"
)

// CheckObjects returns the export files that are missing from the bucket.
func CheckObjects(ctx context.Context, client storage.Client, bucket, prefix string, names []string) ([]string, error) {
	var missing []string

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	src := StorageSource{Bucket: bucket, Prefix: prefix}
	for _, name := range names {
		if !objectExists(ctx, client, bucket, src.ObjectName(name)) {
			missing = append(missing, name)
		}
	}

	return missing, nil
}

// objectExists looks at the first listed key under objectName. The listing is
// cancelled on return so the lister stops even when more keys share the prefix.
func objectExists(ctx context.Context, client storage.Client, bucket, objectName string) bool {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		Prefix:    objectName,
		Recursive: false,
		MaxKeys:   1,
	}

	for obj := range client.ListObjects(ctx, bucket, opts) {
		return obj.Err == nil && obj.Key == objectName
	}
	return false
}
