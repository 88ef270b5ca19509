// Package pkguid provides the identifiers used to correlate the log records of
// a single command invocation.
//
// The generator is chosen by name through New so the strategy stays a
// configuration concern:
//   - "uuid": time-ordered RFC 9562 version 7 UUID strings.
//   - "snowflake": Snowflake IDs rendered as decimal strings.
package pkguid
