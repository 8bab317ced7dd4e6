// Package roster tracks team rosters across polls and reports membership
// changes. The differ owns the one piece of cross-request state in the
// system: the last-observed snapshot, held in an injected Store and accessed
// under a single mutex so concurrent diffs cannot lose updates or report the
// same change twice.
package roster

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/mbakke/fastbreak/internal/fantasy"
)

// Snapshot maps team name to the player names on that team at one poll.
type Snapshot map[string][]string

// TeamChange is the add/drop delta for one team between two snapshots.
type TeamChange struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

// Report is the result of one diff invocation. Changes only carries teams
// with a non-empty delta; the first-ever invocation always reports none.
type Report struct {
	Timestamp time.Time             `json:"timestamp"`
	Baseline  bool                  `json:"baseline"`
	Changes   map[string]TeamChange `json:"changes"`
}

// Notifier forwards one change notification per team. Implementations are
// best-effort: the differ logs and swallows their errors.
type Notifier interface {
	Notify(ctx context.Context, team string, added, removed []string) error
}

// Differ computes roster deltas between successive polls.
type Differ struct {
	mu       sync.Mutex
	store    Store
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewDiffer creates a differ backed by the given store. notifier may be nil
// to disable change forwarding.
func NewDiffer(store Store, notifier Notifier, logger *slog.Logger) *Differ {
	if logger == nil {
		logger = slog.Default()
	}
	return &Differ{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// SnapshotOf captures the diff key view of a fetched league: team name to
// sorted player names.
func SnapshotOf(teams []fantasy.Team) Snapshot {
	snap := make(Snapshot, len(teams))
	for _, t := range teams {
		names := make([]string, 0, len(t.Roster))
		for _, p := range t.Roster {
			names = append(names, p.Name)
		}
		sort.Strings(names)
		snap[t.Name] = names
	}
	return snap
}

// Diff compares the current snapshot against the stored one, fires one
// notification per changed team, and replaces the stored snapshot with the
// current observation regardless of whether changes were found. The first
// call establishes the baseline and reports an empty change set.
//
// The whole read-compute-write sequence runs under the differ's mutex, so
// two racing calls can neither double-report a change nor drop one.
func (d *Differ) Diff(ctx context.Context, teams []fantasy.Team) (Report, error) {
	current := SnapshotOf(teams)

	d.mu.Lock()
	defer d.mu.Unlock()

	previous, tracked, err := d.store.Load(ctx)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Timestamp: d.now(),
		Baseline:  !tracked,
		Changes:   map[string]TeamChange{},
	}

	if tracked {
		for team, players := range current {
			change := diffTeam(previous[team], players)
			if len(change.Added) == 0 && len(change.Removed) == 0 {
				continue
			}
			report.Changes[team] = change
			d.notify(ctx, team, change)
		}
	}

	if err := d.store.Replace(ctx, current); err != nil {
		return Report{}, err
	}
	return report, nil
}

// notify dispatches one best-effort message; failures never affect the diff.
func (d *Differ) notify(ctx context.Context, team string, change TeamChange) {
	if d.notifier == nil {
		return
	}
	if err := d.notifier.Notify(ctx, team, change.Added, change.Removed); err != nil {
		d.logger.Warn("roster change notification failed", "team", team, "error", err)
	}
}

// diffTeam computes set differences by player name. Output is sorted for
// deterministic responses.
func diffTeam(previous, current []string) TeamChange {
	prevSet := make(map[string]struct{}, len(previous))
	for _, name := range previous {
		prevSet[name] = struct{}{}
	}
	currSet := make(map[string]struct{}, len(current))
	for _, name := range current {
		currSet[name] = struct{}{}
	}

	var change TeamChange
	for _, name := range current {
		if _, ok := prevSet[name]; !ok {
			change.Added = append(change.Added, name)
		}
	}
	for _, name := range previous {
		if _, ok := currSet[name]; !ok {
			change.Removed = append(change.Removed, name)
		}
	}
	sort.Strings(change.Added)
	sort.Strings(change.Removed)
	return change
}
