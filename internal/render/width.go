package render

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

const (
	// defaultTermWidth is assumed when the terminal size cannot be detected.
	defaultTermWidth = 80

	// maxBarWidth caps the bar body so very wide terminals stay readable.
	maxBarWidth = 50

	// barGutter is the fixed overhead around the bar body: the space after
	// the label, both pipes, and the percentage column.
	barGutter = 8
)

// TerminalWidth reports the column count of the terminal behind stdout. When
// stdout is not a terminal it falls back to the COLUMNS environment variable,
// then to a default of 80 columns.
func TerminalWidth() int {
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
		return cols
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return defaultTermWidth
}

// BarWidth computes the bar body width for a terminal of termCols columns
// next to a label column of labelWidth. Narrow terminals degrade toward a
// zero-width bar rather than wrapping the line.
func BarWidth(termCols, labelWidth int) int {
	return min(maxBarWidth, max(0, termCols-(labelWidth+barGutter)))
}
