// Package pkgerror defines the structured error type shared by the
// configuration store and the command line front end.
//
// It keeps error handling consistent by:
//   - Classifying every failure with a high-level Type and a stable Code that
//     callers can check with HasCode or CodeOf instead of matching strings.
//   - Retaining the underlying cause so errors.Is and errors.As still reach
//     the original os or parser error.
//   - Mapping codes to process exit statuses at the edge (the CLI).
package pkgerror
