// Package livereload reloads connected pages when served files change.
//
// The feature is opt-in. When enabled it watches the served root recursively
// with fsnotify, coalesces bursts of filesystem events with a debouncer and
// broadcasts a "reload" text frame to every websocket client connected to
// GET /livereload. A small client script served at /livereload.js performs
// the reload; pages include it with:
//
//	<script src="/livereload.js"></script>
//
// # Components
//
//   - Service: the watcher, the debouncer and the client hub.
//   - Handler: the websocket endpoint and the client script route.
//   - Feature: lifecycle glue loaded from the start command.
package livereload
