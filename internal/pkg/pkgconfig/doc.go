// Package pkgconfig provides a small abstraction for reading the tool's own
// settings (which INI file to open, whether to create it, how to log).
//
// Values come from a concrete implementation (Viper) that layers command line
// flags, PARSERCONFIG_* environment variables, an optional YAML settings file
// and defaults. Application code depends on the Config interface so it stays
// easy to test and does not care where values come from.
package pkgconfig
