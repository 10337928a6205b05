// Package config provides configuration management for the Bank Reconciler.
//
// It uses Viper to read environment variables, optionally seeded from a .env file through
// godotenv. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and upload body limit
//   - Database: accounting database driver and connection details
//   - Storage: S3/MinIO credentials and bucket for inputs and reports
//   - Log: logging level and format
//   - Reconcile: header offsets of both exports, matching mode, ledger query, report prefix
//
// Nested keys map to upper-case variables joined by underscores, for example
// RECONCILE_BANK_SKIP_ROWS overrides reconcile.bank_skip_rows.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Reconcile.CompanySkipRows)
package config
