// Package storage provides an abstraction layer for object storage services.
//
// Export files are usually dropped into a bucket by the accounting host's nightly job.
// This package wraps the MinIO Go client so the rest of the application can read,
// publish and verify those files against AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the export bucket.
//   - MakeBucket: Creates the bucket before the first upload.
//   - PutObject: Uploads an export file.
//   - GetObject: Streams an export file to the extractors.
//   - ListObjects: Looks up export objects by prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
