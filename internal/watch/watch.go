// Package watch runs the roster differ on a cron schedule so change
// notifications go out without anyone polling the HTTP endpoint.
package watch

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/mbakke/fastbreak/internal/fantasy"
	"github.com/mbakke/fastbreak/internal/roster"
)

// LeagueSource is the fetch boundary the watcher polls.
type LeagueSource interface {
	FetchLeague(ctx context.Context) ([]fantasy.Team, error)
}

// Watcher periodically fetches rosters and feeds them through the differ.
type Watcher struct {
	source LeagueSource
	differ *roster.Differ
	logger *slog.Logger
	cron   *cron.Cron
}

// New creates a watcher with the given cron schedule spec (standard 5-field
// syntax, e.g. "*/15 * * * *").
func New(source LeagueSource, differ *roster.Differ, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		source: source,
		differ: differ,
		logger: logger,
		cron:   cron.New(),
	}
}

// Start schedules the poll job and runs until ctx is cancelled. Blocks;
// intended to be called with `go` or as a CLI foreground loop.
func (w *Watcher) Start(ctx context.Context, schedule string) error {
	if _, err := w.cron.AddFunc(schedule, func() { w.poll(ctx) }); err != nil {
		return err
	}

	// Establish the baseline immediately rather than waiting a full period.
	w.poll(ctx)

	w.cron.Start()
	w.logger.Info("roster watch started", "schedule", schedule)

	<-ctx.Done()
	stopped := w.cron.Stop()
	<-stopped.Done()
	w.logger.Info("roster watch stopped")
	return nil
}

// poll runs one fetch-and-diff cycle. Fetch failures skip the cycle without
// touching the stored snapshot.
func (w *Watcher) poll(ctx context.Context) {
	teams, err := w.source.FetchLeague(ctx)
	if err != nil {
		w.logger.Error("roster watch fetch failed", "error", err)
		return
	}

	report, err := w.differ.Diff(ctx, teams)
	if err != nil {
		w.logger.Error("roster watch diff failed", "error", err)
		return
	}

	if report.Baseline {
		w.logger.Info("roster watch baseline established", "teams", len(teams))
		return
	}
	if len(report.Changes) > 0 {
		w.logger.Info("roster changes detected", "teams_changed", len(report.Changes))
	}
}
