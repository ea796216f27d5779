package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/petagego/internal/ctxlog"
	"github.com/specialistvlad/petagego/internal/render"
	"github.com/specialistvlad/petagego/internal/report"
	"github.com/specialistvlad/petagego/internal/resolve"
	"github.com/specialistvlad/petagego/internal/species"
)

// Run executes the main application logic based on the App's configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.List {
		a.logger.Debug("Listing supported animals.", "count", len(species.Keys()))
		report.WriteSpeciesList(a.outW)
		return nil
	}

	matches, err := resolve.Resolve(ctx, a.config.Animals, a.config.Age)
	if err != nil {
		return err
	}
	a.logger.Debug("Resolution complete.", "matches", len(matches))

	termWidth := a.config.TermWidth
	if termWidth <= 0 {
		termWidth = render.TerminalWidth()
	}

	builder := report.NewBuilder(a.outW, report.Options{
		JSON:      a.config.JSON,
		Color:     !a.config.NoColor,
		TermWidth: termWidth,
	})
	if err := builder.Build(ctx, matches, *a.config.Age); err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
