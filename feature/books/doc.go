// Package books serves the book pages. The edit form offers a publisher
// select and one checkbox per author; posting it reconciles the book's
// authors against selectedAuthors.
package books
