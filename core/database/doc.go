// Package database handles database connections.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL or SQLite connections based on the application's configuration.
//
// # Connect
//
// Connect establishes a connection and verifies it with a ping. The connection is used
// as an alternative source for the company ledger: instead of uploading the accounting
// export, the company side of a reconciliation can be read with a SQL query
// (see table.LoadQuery).
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	ledger, err := table.LoadQuery(ctx, db, "SELECT * FROM movimientos")
package database
