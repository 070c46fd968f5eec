// Package views renders the server side HTML pages.
//
// Templates are embedded in the binary. Each page defines "title" and
// "content" blocks that the shared layout places into the document.
package views
