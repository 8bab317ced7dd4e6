package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbakke/fastbreak/internal/fantasy"
)

type recordedNotification struct {
	Team    string
	Added   []string
	Removed []string
}

// recordingNotifier captures every Notify call; set err to make it fail.
type recordingNotifier struct {
	calls []recordedNotification
	err   error
}

func (n *recordingNotifier) Notify(_ context.Context, team string, added, removed []string) error {
	n.calls = append(n.calls, recordedNotification{Team: team, Added: added, Removed: removed})
	return n.err
}

func league(rosters map[string][]string) []fantasy.Team {
	teams := make([]fantasy.Team, 0, len(rosters))
	for name, players := range rosters {
		t := fantasy.Team{Name: name}
		for _, p := range players {
			t.Roster = append(t.Roster, fantasy.Player{Name: p})
		}
		teams = append(teams, t)
	}
	return teams
}

func TestDiffBaseline(t *testing.T) {
	d := NewDiffer(NewMemoryStore(), nil, nil)

	report, err := d.Diff(context.Background(), league(map[string][]string{
		"Alpha": {"X", "Y"},
	}))

	require.NoError(t, err)
	assert.True(t, report.Baseline)
	assert.Empty(t, report.Changes)
	assert.False(t, report.Timestamp.IsZero())
}

func TestDiffUnchangedRosters(t *testing.T) {
	d := NewDiffer(NewMemoryStore(), nil, nil)
	teams := league(map[string][]string{"Alpha": {"X", "Y"}, "Beta": {"Z"}})

	_, err := d.Diff(context.Background(), teams)
	require.NoError(t, err)

	report, err := d.Diff(context.Background(), teams)
	require.NoError(t, err)
	assert.False(t, report.Baseline)
	assert.Empty(t, report.Changes)
}

func TestDiffAddAndDrop(t *testing.T) {
	d := NewDiffer(NewMemoryStore(), nil, nil)
	ctx := context.Background()

	_, err := d.Diff(ctx, league(map[string][]string{"Alpha": {"X", "Y"}}))
	require.NoError(t, err)

	report, err := d.Diff(ctx, league(map[string][]string{"Alpha": {"Y", "Z"}}))
	require.NoError(t, err)

	require.Contains(t, report.Changes, "Alpha")
	assert.Equal(t, []string{"Z"}, report.Changes["Alpha"].Added)
	assert.Equal(t, []string{"X"}, report.Changes["Alpha"].Removed)
}

func TestDiffOnlyChangedTeamsReported(t *testing.T) {
	d := NewDiffer(NewMemoryStore(), nil, nil)
	ctx := context.Background()

	_, err := d.Diff(ctx, league(map[string][]string{
		"Alpha": {"X"},
		"Beta":  {"Q"},
	}))
	require.NoError(t, err)

	report, err := d.Diff(ctx, league(map[string][]string{
		"Alpha": {"X", "W"},
		"Beta":  {"Q"},
	}))
	require.NoError(t, err)

	assert.Len(t, report.Changes, 1)
	assert.Contains(t, report.Changes, "Alpha")
}

func TestDiffNotifiesChangedTeams(t *testing.T) {
	n := &recordingNotifier{}
	d := NewDiffer(NewMemoryStore(), n, nil)
	ctx := context.Background()

	_, err := d.Diff(ctx, league(map[string][]string{"Alpha": {"X"}}))
	require.NoError(t, err)
	assert.Empty(t, n.calls, "baseline must not notify")

	_, err = d.Diff(ctx, league(map[string][]string{"Alpha": {"Z"}}))
	require.NoError(t, err)

	require.Len(t, n.calls, 1)
	assert.Equal(t, "Alpha", n.calls[0].Team)
	assert.Equal(t, []string{"Z"}, n.calls[0].Added)
	assert.Equal(t, []string{"X"}, n.calls[0].Removed)
}

func TestDiffNotifierErrorIsSwallowed(t *testing.T) {
	n := &recordingNotifier{err: errors.New("webhook down")}
	d := NewDiffer(NewMemoryStore(), n, nil)
	ctx := context.Background()

	_, err := d.Diff(ctx, league(map[string][]string{"Alpha": {"X"}}))
	require.NoError(t, err)

	report, err := d.Diff(ctx, league(map[string][]string{"Alpha": {"Y"}}))
	require.NoError(t, err)
	assert.Len(t, report.Changes, 1)
	assert.Len(t, n.calls, 1)
}

func TestDiffReplacesSnapshotEvenWhenUnchanged(t *testing.T) {
	store := NewMemoryStore()
	d := NewDiffer(store, nil, nil)
	ctx := context.Background()

	_, err := d.Diff(ctx, league(map[string][]string{"Alpha": {"X"}}))
	require.NoError(t, err)

	// A second identical poll still rewrites the stored snapshot.
	_, err = d.Diff(ctx, league(map[string][]string{"Alpha": {"X"}}))
	require.NoError(t, err)

	snap, tracked, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, tracked)
	assert.Equal(t, Snapshot{"Alpha": {"X"}}, snap)
}

func TestDiffNotificationFiresOncePerChange(t *testing.T) {
	n := &recordingNotifier{}
	d := NewDiffer(NewMemoryStore(), n, nil)
	ctx := context.Background()

	_, err := d.Diff(ctx, league(map[string][]string{"Alpha": {"X"}}))
	require.NoError(t, err)

	changed := league(map[string][]string{"Alpha": {"Y"}})
	_, err = d.Diff(ctx, changed)
	require.NoError(t, err)

	// The change was absorbed into the snapshot, so repeating the same
	// roster produces no second notification.
	_, err = d.Diff(ctx, changed)
	require.NoError(t, err)

	assert.Len(t, n.calls, 1)
}

func TestSnapshotOfSortsPlayers(t *testing.T) {
	snap := SnapshotOf(league(map[string][]string{"Alpha": {"Zeb", "Abe", "Moe"}}))

	assert.Equal(t, []string{"Abe", "Moe", "Zeb"}, snap["Alpha"])
}

func TestMemoryStoreLoadCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, tracked, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, tracked)

	require.NoError(t, store.Replace(ctx, Snapshot{"Alpha": {"X"}}))

	snap, tracked, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, tracked)

	// Mutating the loaded copy must not leak into the store.
	snap["Alpha"][0] = "mutated"
	again, _, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, again["Alpha"])
}
