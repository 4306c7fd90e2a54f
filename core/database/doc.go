// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database. It is agnostic
// to the bundle table layout; the check command relies on the inspector to verify it.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, which the check
// command uses to verify the bundle option, selection, and title tables before
// an import run is attempted against them.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.VerifyTable(db, "catalog_product_bundle_option", expectedColumns)
package database
