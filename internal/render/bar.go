package render

import (
	"fmt"
	"strings"
)

// ANSI escape codes for the bar body.
const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

// Bar renders one progress line: a left-justified label, the bar body between
// pipes, and an integer percentage right-aligned to three columns. value is
// clamped into [0, max] before the ratio is taken, so the percentage never
// leaves 0..100. When color is enabled the escape code opens before the
// filled run and the style resets after the bar body.
func Bar(label string, value, max float64, barWidth, labelWidth int, color bool) string {
	pct := clamp(value, 0, max) / max
	filled := int(pct * float64(barWidth))
	empty := barWidth - filled

	var body strings.Builder
	if color {
		body.WriteString(colorFor(pct))
	}
	body.WriteString(strings.Repeat("=", filled))
	body.WriteString(strings.Repeat(" ", empty))
	if color {
		body.WriteString(ansiReset)
	}

	return fmt.Sprintf("%-*s |%s| %3.0f%%", labelWidth, label, body.String(), pct*100)
}

// colorFor picks the escape code for a spent-lifespan ratio: red for the
// final stretch, yellow past the halfway mark, cyan otherwise.
func colorFor(pct float64) string {
	switch {
	case pct >= 0.8:
		return ansiRed
	case pct >= 0.6:
		return ansiYellow
	default:
		return ansiCyan
	}
}

// clamp pins v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
