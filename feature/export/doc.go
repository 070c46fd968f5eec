// Package export writes JSON snapshots of the catalog to the object store.
//
// Snapshots are stored under exports/ as catalog-<UTC timestamp>.json and
// hold the publishers, authors, books and book_authors rows as they are in
// the database, without nested relations.
package export
