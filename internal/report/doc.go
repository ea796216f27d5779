// Package report assembles the program's primary output: per-animal summary
// lines followed by an aligned Life Progress bar section, or structured JSON
// records, plus the listing of supported animals. It owns everything written
// to the primary output stream; diagnostics stay on the logger.
package report
