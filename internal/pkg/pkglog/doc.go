// Package pkglog contains logging helpers used across the application.
//
// It is built around slog and keeps logs consistent by:
//   - Initializing a JSON (or text) handler with stable keys.
//   - Attaching the service name and the invocation run ID (when present in
//     the context) to each log record.
package pkglog
