// Package cli parses command-line arguments into the application's internal
// configuration. It owns the process-level surface: usage text, the version
// banner, and the exit codes carried by ExitError.
package cli
