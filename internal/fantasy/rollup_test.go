package fantasy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedEngine returns an engine pinned to Wednesday 2026-01-14, giving a
// window of Mon 2026-01-12 through Sun 2026-01-18.
func fixedEngine(weights Weights) *Engine {
	e := NewEngine(testSeason, weights)
	e.Now = func() time.Time {
		return time.Date(2026, time.January, 14, 12, 0, 0, 0, time.UTC)
	}
	return e
}

// scheduledGames builds n games inside the fixed engine's window.
func scheduledGames(n int) []Game {
	games := make([]Game, n)
	for i := range games {
		games[i] = Game{Date: time.Date(2026, time.January, 12+i, 19, 0, 0, 0, time.UTC)}
	}
	return games
}

func projectedPlayer(name string, weeklyFPTSPerGame float64, games int) Player {
	return Player{
		Name: name,
		Stats: map[string]StatBucket{
			ProjectionKey(testSeason, true): {CatFPTS: weeklyFPTSPerGame},
		},
		Schedule: scheduledGames(games),
	}
}

func TestPlayerOutlookWeeklyProjection(t *testing.T) {
	e := fixedEngine(DefaultWeights())
	p := projectedPlayer("Guard", 2.0, 3)

	out := e.PlayerOutlook(&p, e.CurrentWindow())

	assert.Equal(t, 3, out.GamesThisWeek)
	assert.Equal(t, 6.0, out.ProjectedWeek[CatFPTS])
}

func TestPlayerOutlookNoGamesThisWeek(t *testing.T) {
	e := fixedEngine(DefaultWeights())
	p := Player{
		Name: "Benched",
		Stats: map[string]StatBucket{
			ProjectionKey(testSeason, true): {
				CatFPTS: 30, CatPoints: 20, CatRebounds: 8,
				CatAssists: 4, CatBlocks: 1, CatSteals: 1,
			},
		},
	}

	out := e.PlayerOutlook(&p, e.CurrentWindow())

	assert.Equal(t, 0, out.GamesThisWeek)
	for cat, v := range out.ProjectedWeek {
		assert.Zerof(t, v, "weekly %s should be 0 with no games", cat)
	}
}

func TestTeamRollupSums(t *testing.T) {
	weights := Weights{CatPoints: 1, CatRebounds: 1}
	e := fixedEngine(weights)

	team := Team{
		ID:   1,
		Name: "Alpha",
		Roster: []Player{
			{
				Name: "One",
				Stats: map[string]StatBucket{
					BucketTotal: {CatPoints: 100, CatRebounds: 40},
				},
			},
			{
				Name: "Two",
				Stats: map[string]StatBucket{
					BucketTotal: {CatPoints: 50.25}, // REB absent counts as 0
				},
			},
		},
	}

	rollup := e.TeamRollup(&team, e.CurrentWindow(), false)

	assert.InDelta(t, 150.25, rollup.SeasonTotals[CatPoints], 0.001)
	assert.InDelta(t, 40.0, rollup.SeasonTotals[CatRebounds], 0.001)
	// FPTS sums each player's score: 140 + 50.25.
	assert.InDelta(t, 190.25, rollup.SeasonTotals[CatFPTS], 0.001)
	assert.Nil(t, rollup.Roster)
}

func TestTeamRollupIncludesRoster(t *testing.T) {
	e := fixedEngine(DefaultWeights())
	team := Team{Name: "Alpha", Roster: []Player{projectedPlayer("One", 10, 2)}}

	rollup := e.TeamRollup(&team, e.CurrentWindow(), true)

	require.Len(t, rollup.Roster, 1)
	assert.Equal(t, "One", rollup.Roster[0].Name)
	assert.Equal(t, 20.0, rollup.ProjectedWeeklyTotals[CatFPTS])
}

func TestLeagueSummaryOrdering(t *testing.T) {
	e := fixedEngine(DefaultWeights())

	teams := []Team{
		{ID: 1, Name: "Ten", Roster: []Player{projectedPlayer("a", 10, 1)}},
		{ID: 2, Name: "Thirty", Roster: []Player{projectedPlayer("b", 30, 1)}},
		{ID: 3, Name: "Twenty", Roster: []Player{projectedPlayer("c", 20, 1)}},
	}

	summary := e.LeagueSummary(teams, e.CurrentWindow())

	require.Len(t, summary, 3)
	assert.Equal(t, "Thirty", summary[0].TeamName)
	assert.Equal(t, "Twenty", summary[1].TeamName)
	assert.Equal(t, "Ten", summary[2].TeamName)
}

func TestLeagueSummaryStableTies(t *testing.T) {
	e := fixedEngine(DefaultWeights())

	teams := []Team{
		{ID: 1, Name: "First", Roster: []Player{projectedPlayer("a", 15, 2)}},
		{ID: 2, Name: "Second", Roster: []Player{projectedPlayer("b", 15, 2)}},
		{ID: 3, Name: "Third", Roster: []Player{projectedPlayer("c", 15, 2)}},
	}

	summary := e.LeagueSummary(teams, e.CurrentWindow())

	// Tied teams keep their league enumeration order.
	assert.Equal(t, []string{"First", "Second", "Third"},
		[]string{summary[0].TeamName, summary[1].TeamName, summary[2].TeamName})
}

func TestLeagueSummaryEmptyRosters(t *testing.T) {
	e := fixedEngine(DefaultWeights())
	summary := e.LeagueSummary([]Team{{ID: 1, Name: "Empty"}}, e.CurrentWindow())

	require.Len(t, summary, 1)
	assert.Equal(t, 0.0, summary[0].ProjectedWeeklyTotals[CatFPTS])
	assert.Equal(t, 0.0, summary[0].SeasonTotals[CatPoints])
}
