// Package health exposes a liveness endpoint that pings the catalog database.
package health
