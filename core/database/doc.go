// Package database handles database connections and schema inspection.
//
// It wraps GORM and selects the dialector from configuration: MySQL for
// deployments, SQLite for local use and tests. SQLite pools are limited to a
// single connection so that ":memory:" databases behave as one database.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both dialects. The
// integrity feature compares this against the catalog models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "book_authors")
package database
