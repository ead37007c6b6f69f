// Package cli provides the command-line interface for cuid2.
//
// Commands:
//   - generate: Print one or more identifiers, optionally from several goroutines
//   - validate: Check values against the identifier shape (letters and digits, bounded length)
//   - encode: Encode hex or text input as base36
//   - decode: Decode base36 back to hex or text
//   - fingerprint: Print a fresh host fingerprint
//   - config show: Display the effective configuration and where each value came from
//   - version: Show build information
//
// Configuration is resolved from defaults, the global config file
// (~/.config/cuid2/config.yaml), a local .cuid2.yaml, an explicit --config
// file, CUID2_* environment variables and finally command flags.
//
// Usage:
//
//	cuid2 generate
//	cuid2 generate -n 1000 -p 8 --length 32
//	cuid2 generate --json -n 3
//	cuid2 validate tz4a98xxat96iws9zmbrgj3a
//	cuid2 encode --from text hello
//	cuid2 decode --to text 5pzcszu7
//	cuid2 config show --sources
package cli
