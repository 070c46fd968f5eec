// Package publishers serves the publisher pages.
package publishers
