// Package links adapts the book_authors join table to the reconcile engine.
//
// A Profile fixes the direction of the relation: AuthorBooks reconciles an
// author's books against every book, BookAuthors reconciles a book's authors
// against every author. The Adapter loads the universe and the current links
// with batch queries and applies plans with one INSERT and one DELETE.
//
// # Usage
//
//	adapter := links.NewAdapter(links.AuthorBooks())
//	plan, n, err := reconcile.ReconcileAndApply(ctx, adapter.Spec(), tx, "3",
//	    reconcile.Selection{"1", "2"}, reconcile.ReconcileOptions{Confirmed: true})
package links
