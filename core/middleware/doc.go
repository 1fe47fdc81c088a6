// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RequestID: Generates a unique ID for every incoming request, injecting
//     it into the context and response headers for tracing.
//   - AccessLog: Emits one human-readable "[HTTP]" line per handled request.
//   - NoCache: Stamps no-cache directives on every response so browsers
//     re-fetch files edited between requests.
//
// These middleware components are registered globally in core/server.
package middleware
