// Package server holds the HTTP server configuration, port resolution and
// application construction.
//
// # Port resolution
//
// FreePort implements the port selection contract: a preferred port of 0
// yields an OS-assigned ephemeral port; a taken preferred port falls back to
// a fixed scan range (8001-8010) and finally to OS assignment. Bind failures
// are never surfaced, only skipped.
//
// # Application
//
// New assembles the Fiber app: request IDs, access logging, no-cache headers
// and the static file handler over the configured root directory. The caller
// owns the lifecycle (Listen/Shutdown).
package server
