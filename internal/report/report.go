package report

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/specialistvlad/petagego/internal/ctxlog"
	"github.com/specialistvlad/petagego/internal/render"
	"github.com/specialistvlad/petagego/internal/resolve"
	"github.com/specialistvlad/petagego/internal/species"
)

// Options selects the output mode for a Builder.
type Options struct {
	JSON      bool
	Color     bool
	TermWidth int
}

// Builder turns resolved animals into one report on the output stream.
type Builder struct {
	out  io.Writer
	opts Options
}

// NewBuilder returns a Builder writing to out.
func NewBuilder(out io.Writer, opts Options) *Builder {
	return &Builder{out: out, opts: opts}
}

// row is one animal's computed result. Rows live only while a single report
// is being written. displayLabel keeps the user's original spelling for
// summaries and structured output; chartLabel is the canonical key used on
// bar labels.
type row struct {
	displayLabel string
	chartLabel   string
	humanAge     float64
	animalMax    float64
}

// Build computes the human-equivalent age for every match and writes one
// report, structured or textual depending on the options.
func (b *Builder) Build(ctx context.Context, matches []resolve.Match, age float64) error {
	logger := ctxlog.FromContext(ctx)

	rows := make([]row, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, row{
			displayLabel: m.Input,
			chartLabel:   m.Record.Key,
			humanAge:     m.Record.HumanEquivalent(age),
			animalMax:    m.Record.MaxLifespan,
		})
	}

	if b.opts.JSON {
		logger.Debug("Emitting structured records.", "count", len(rows))
		return b.writeJSON(rows, age)
	}
	logger.Debug("Emitting textual report.", "count", len(rows))
	return b.writeHuman(rows, age)
}

// writeHuman prints the summary lines, then the Life Progress section with a
// pair of aligned bars per animal: the human-equivalent bar against a human
// lifespan, and the animal's own bar against its typical lifespan.
func (b *Builder) writeHuman(rows []row, age float64) error {
	ageStr := strconv.FormatFloat(age, 'f', -1, 64)
	for _, r := range rows {
		fmt.Fprintf(b.out, "%s years old %s ≈ %.1f human years\n", ageStr, r.displayLabel, r.humanAge)
	}

	if len(rows) == 0 {
		return nil
	}

	labelWidth := labelColumnWidth(rows)
	barWidth := render.BarWidth(b.opts.TermWidth, labelWidth)

	fmt.Fprintf(b.out, "\nLife Progress:\n\n")
	for i, r := range rows {
		humanLabel := "Human"
		if len(rows) > 1 {
			humanLabel = fmt.Sprintf("human(%s)", r.chartLabel)
		}

		fmt.Fprintln(b.out, render.Bar(humanLabel,
			min(r.humanAge, species.HumanMaxLifespan), species.HumanMaxLifespan,
			barWidth, labelWidth, b.opts.Color))
		fmt.Fprintln(b.out, render.Bar(r.chartLabel,
			min(age, r.animalMax), r.animalMax,
			barWidth, labelWidth, b.opts.Color))

		if i+1 < len(rows) {
			fmt.Fprintln(b.out)
		}
	}
	fmt.Fprintln(b.out)

	return nil
}

// labelColumnWidth is the shared label column width for every bar of one
// report. A single-animal report labels its human bar "Human"; multi-animal
// reports disambiguate with "human(<key>)". Never narrower than 10 columns.
func labelColumnWidth(rows []row) int {
	width := 0
	if len(rows) == 1 {
		width = max(len("Human"), len(rows[0].chartLabel))
	} else {
		for _, r := range rows {
			width = max(width, len(fmt.Sprintf("human(%s)", r.chartLabel)))
		}
	}
	return max(width, 10)
}

// WriteSpeciesList prints every supported animal with its description, in
// fixed table order.
func WriteSpeciesList(out io.Writer) {
	fmt.Fprintf(out, "Available animals:\n\n")
	for _, rec := range species.All() {
		fmt.Fprintf(out, "  %-12s - %s\n", rec.Key, rec.Description)
	}
}
