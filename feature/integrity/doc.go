// Package integrity checks that the catalog's storage is consistent.
//
// # Checks Provided
//
//   - Schema: the authors, books, publishers and book_authors tables have the
//     columns (and, where the model declares one, the types) of the GORM models.
//   - Links: no book_authors row points at a deleted book or author, and every
//     book still has its publisher.
//   - Storage: the export bucket and its folders exist.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/links : Runs the link check (supports ?fix=true).
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity
