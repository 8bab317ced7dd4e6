package fantasy

import (
	"sort"
	"time"
)

// PlayerOutlook is the computed per-player view served by the roster
// endpoints: identity and status plus scored, projected, and
// weekly-extrapolated figures.
type PlayerOutlook struct {
	Name             string             `json:"name"`
	Position         string             `json:"position"`
	ProTeam          string             `json:"pro_team"`
	InjuryStatus     string             `json:"injury_status"`
	Averages         map[string]float64 `json:"averages"`
	SeasonFPTS       float64            `json:"season_fpts"`
	ProjectedPerGame map[string]float64 `json:"projected_per_game"`
	EstimatedGames   int                `json:"estimated_games"`
	GamesThisWeek    int                `json:"games_this_week"`
	ProjectedWeek    map[string]float64 `json:"projected_week"`
}

// TeamRollup aggregates a team's roster into season and weekly-projected
// totals. Totals are rounded to 2 decimals here, at team level, and nowhere
// earlier.
type TeamRollup struct {
	TeamID                int                `json:"team_id"`
	TeamName              string             `json:"team_name"`
	Wins                  int                `json:"wins"`
	Losses                int                `json:"losses"`
	SeasonTotals          map[string]float64 `json:"season_totals"`
	ProjectedWeeklyTotals map[string]float64 `json:"projected_weekly_totals"`
	Roster                []PlayerOutlook    `json:"roster,omitempty"`
}

// Engine bundles the league context the core computations run under.
type Engine struct {
	Season  int
	Weights Weights

	// Now returns the wall-clock time the weekly window is derived from.
	// Defaults to time.Now; tests inject a fixed clock.
	Now func() time.Time
}

// NewEngine creates an engine for one league season.
func NewEngine(season int, weights Weights) *Engine {
	if weights == nil {
		weights = DefaultWeights()
	}
	return &Engine{Season: season, Weights: weights, Now: time.Now}
}

// CurrentWindow returns the weekly window containing the engine's current
// time. Recomputed fresh on every call.
func (e *Engine) CurrentWindow() Window {
	return WeekOf(e.Now())
}

// PlayerOutlook computes the full per-player output for one roster entry.
func (e *Engine) PlayerOutlook(p *Player, w Window) PlayerOutlook {
	proj := Resolve(p, e.Season, e.Weights)
	games := GamesInWindow(p, w)

	avg := make(map[string]float64, len(CoreCategories))
	perGame := make(map[string]float64)
	week := make(map[string]float64, len(CoreCategories)+1)

	avgBucket := p.Bucket(BucketAverage)
	for _, cat := range CoreCategories {
		avg[cat] = avgBucket.Get(cat)
		if rate, ok := proj.PerGame(cat); ok {
			perGame[cat] = Round2(rate)
		}
		week[cat] = Round2(proj.Weekly(cat, games))
	}
	if rate, ok := proj.PerGame(CatFPTS); ok {
		perGame[CatFPTS] = Round2(rate)
	}
	week[CatFPTS] = Round2(proj.Weekly(CatFPTS, games))

	return PlayerOutlook{
		Name:             p.Name,
		Position:         p.Position,
		ProTeam:          p.ProTeam,
		InjuryStatus:     p.InjuryStatus,
		Averages:         avg,
		SeasonFPTS:       Score(p.Bucket(BucketTotal), e.Weights),
		ProjectedPerGame: perGame,
		EstimatedGames:   proj.EstimatedGames,
		GamesThisWeek:    games,
		ProjectedWeek:    week,
	}
}

// TeamRollup aggregates one team. Player-level figures feeding the sums stay
// unrounded; only the team totals are rounded. Missing player values count
// as 0.
func (e *Engine) TeamRollup(team *Team, w Window, includeRoster bool) TeamRollup {
	season := make(map[string]float64, len(CoreCategories)+1)
	weekly := make(map[string]float64, len(CoreCategories)+1)

	var roster []PlayerOutlook
	if includeRoster {
		roster = make([]PlayerOutlook, 0, len(team.Roster))
	}

	for i := range team.Roster {
		p := &team.Roster[i]
		proj := Resolve(p, e.Season, e.Weights)
		games := GamesInWindow(p, w)

		total := p.Bucket(BucketTotal)
		for _, cat := range CoreCategories {
			season[cat] += total.Get(cat)
			weekly[cat] += proj.Weekly(cat, games)
		}
		season[CatFPTS] += Score(total, e.Weights)
		weekly[CatFPTS] += proj.Weekly(CatFPTS, games)

		if includeRoster {
			roster = append(roster, e.PlayerOutlook(p, w))
		}
	}

	for cat := range season {
		season[cat] = Round2(season[cat])
	}
	for cat := range weekly {
		weekly[cat] = Round2(weekly[cat])
	}

	return TeamRollup{
		TeamID:                team.ID,
		TeamName:              team.Name,
		Wins:                  team.Wins,
		Losses:                team.Losses,
		SeasonTotals:          season,
		ProjectedWeeklyTotals: weekly,
		Roster:                roster,
	}
}

// LeagueSummary rolls up every team and orders the result by projected
// weekly FPTS, highest first. Ties keep the league's original team order
// (stable sort) so output stays deterministic.
func (e *Engine) LeagueSummary(teams []Team, w Window) []TeamRollup {
	rollups := make([]TeamRollup, 0, len(teams))
	for i := range teams {
		rollups = append(rollups, e.TeamRollup(&teams[i], w, false))
	}
	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].ProjectedWeeklyTotals[CatFPTS] > rollups[j].ProjectedWeeklyTotals[CatFPTS]
	})
	return rollups
}
