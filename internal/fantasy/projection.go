package fantasy

import "math"

// fullSeasonGames is the estimated-games fallback when no per-game reference
// is available: the length of a pro season.
const fullSeasonGames = 82

// Projection is a player's resolved season projection plus derived per-game
// rates. Build one with Resolve.
type Projection struct {
	// Total and Average are the projected season buckets after the source
	// fallback chain, possibly empty, never nil-unsafe.
	Total   StatBucket
	Average StatBucket

	// EstimatedGames is the per-player games-played estimate used to derive
	// per-game rates from season totals. 0 when no season projection exists.
	EstimatedGames int

	perGame map[string]float64
}

// Resolve resolves a player's projected buckets and per-game estimates for
// the given season under the given scoring weights.
//
// Bucket resolution falls back, independently for the total and average
// variants: the season-keyed projection entry when the source populated it,
// else the legacy flat projection entry, else empty.
//
// Per-game rates, per category: an explicit projected average wins; otherwise
// a positive projected season total is divided by the estimated games played.
// Estimated games = round(season FPTS projection / projected FPTS per game),
// defaulting to a full 82-game season when no per-game reference exists, and
// floored at 1 so the division is always defined. One estimate is computed
// per player and reused for every category.
func Resolve(p *Player, season int, weights Weights) Projection {
	pr := Projection{
		Total:   resolveBucket(p, season, false),
		Average: resolveBucket(p, season, true),
		perGame: make(map[string]float64),
	}

	seasonFPTS := projectedSeasonFPTS(pr.Total, weights)
	if seasonFPTS > 0 {
		pr.EstimatedGames = estimateGames(seasonFPTS, pr.Average)
	}

	categories := append([]string{CatFPTS}, CoreCategories...)
	for _, cat := range categories {
		rate := pr.resolveRate(cat, seasonFPTS)
		if rate != nil {
			pr.perGame[cat] = *rate
		}
	}
	return pr
}

// resolveBucket picks the projected bucket for one variant (total/average).
func resolveBucket(p *Player, season int, average bool) StatBucket {
	if b := p.Bucket(ProjectionKey(season, average)); b != nil {
		return b
	}
	legacy := BucketProjTotal
	if average {
		legacy = BucketProjAverage
	}
	if b := p.Bucket(legacy); b != nil {
		return b
	}
	return StatBucket{}
}

// projectedSeasonFPTS reads the season fantasy-point projection from the
// total bucket, scoring the bucket under the league weights when the source
// did not apply its own fantasy total.
func projectedSeasonFPTS(total StatBucket, weights Weights) float64 {
	if v, ok := total.Lookup(CatFPTS); ok {
		return v
	}
	return Score(total, weights)
}

// estimateGames derives estimated games played from the season FPTS
// projection. seasonFPTS must be positive.
func estimateGames(seasonFPTS float64, average StatBucket) int {
	games := fullSeasonGames
	if ref, ok := average.Lookup(CatFPTS); ok && ref > 0 {
		games = int(math.Round(seasonFPTS / ref))
	}
	if games < 1 {
		games = 1
	}
	return games
}

// resolveRate resolves the per-game rate for one category, nil when no
// projection source covers it.
func (pr Projection) resolveRate(category string, seasonFPTS float64) *float64 {
	if v, ok := pr.Average.Lookup(category); ok {
		return &v
	}

	total := pr.Total.Get(category)
	if category == CatFPTS {
		total = seasonFPTS
	}
	if total > 0 && pr.EstimatedGames >= 1 {
		rate := total / float64(pr.EstimatedGames)
		return &rate
	}
	return nil
}

// PerGame returns the resolved per-game rate for a category and whether any
// projection source could produce one.
func (pr Projection) PerGame(category string) (float64, bool) {
	v, ok := pr.perGame[category]
	return v, ok
}

// Weekly extrapolates a category to the scheduling window: per-game rate
// times games this week, 0 whenever either side is absent or zero. Unrounded;
// callers round at presentation time.
func (pr Projection) Weekly(category string, gamesThisWeek int) float64 {
	rate, ok := pr.PerGame(category)
	if !ok || gamesThisWeek <= 0 {
		return 0
	}
	return rate * float64(gamesThisWeek)
}
