// Package authors serves the author pages: listing, details, create, edit
// and delete. Editing an author also reconciles the set of books they wrote
// against the checkboxes posted as selectedBooks.
package authors
