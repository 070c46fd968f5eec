// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: assigns a unique Request ID (RayID) to every incoming request,
//     injecting it into the context and response headers for tracing.
package middleware
