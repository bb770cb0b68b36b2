// Package config provides configuration management for abc-product.
//
// Values come from environment variables, optionally seeded from a .env file, and fall
// back to the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Export: where item.data and item_posted.data live and how duplicates are treated
//   - Storage: S3/MinIO credentials and bucket settings
//   - Server: HTTP port and API key
//   - Log: Logging level and format
//
// Environment keys are the upper-cased section and field joined by an underscore,
// e.g. EXPORT_SOURCE or STORAGE_BUCKET.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Export.BaseFile)
package config
