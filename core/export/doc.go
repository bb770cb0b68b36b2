// Package export locates and opens the flat files produced by the accounting package's
// database export (report 7-10, file "I").
//
// The export writes two tab-delimited, header-less files per company, usually
//
//	C:\ABC Software\Database Export\Company001\Data\item.data
//	C:\ABC Software\Database Export\Company001\Data\item_posted.data
//
// # Sources
//
// A Source hides where the files live:
//   - LocalSource: a directory on disk.
//   - StorageSource: objects in an S3/MinIO bucket under a prefix.
//
// # Reading
//
// NewReader returns an encoding/csv reader configured for the export: tab delimiter,
// no header row, variable field count and lenient quoting.
//
// # Storage
//
// CheckObjects reports export files missing from a bucket and Upload publishes a local
// export into one.
package export
