// Package commands defines the hacspec developer CLI.
//
// Commands
//
//   - gen     Render a fixed-array family from a YAML manifest
//   - hex     Validate hex strings and print them normalised with their length
//   - random  Print random bytes as hex, optionally from a seeded stream
//
// The root command installs a slog text handler on stderr before any
// subcommand runs; --verbose lowers its level to debug.
package commands
