// Package config provides configuration management for the bundle importer.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: Logging level and format
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials and bucket settings (optional feed source)
//   - Import: Batch size and persisted bundle table names
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Import.BatchSize)
package config
