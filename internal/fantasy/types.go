// Package fantasy implements the projection and scoring core: stat buckets,
// fantasy-point scoring, projection resolution, weekly extrapolation, and
// team/league rollups. Everything here is pure and synchronous; providers
// feed it snapshots, the API layer serves its output.
package fantasy

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Stat category codes. Buckets may carry categories beyond these; scoring
// only reads the ones named by the weights map.
const (
	CatPoints   = "PTS"
	CatRebounds = "REB"
	CatAssists  = "AST"
	CatBlocks   = "BLK"
	CatSteals   = "STL"
	CatThrees   = "3PM"
	CatTurnover = "TO"
	CatFGPct    = "FG%"
	CatFTPct    = "FT%"
	CatGames    = "GP"
	CatFPTS     = "FPTS"
)

// CoreCategories are the per-category stats carried through projections and
// weekly extrapolation on player output.
var CoreCategories = []string{CatPoints, CatRebounds, CatAssists, CatBlocks, CatSteals}

// StatBucket maps stat category codes to numeric values for one scope
// (average, season total, projected total, projected average). A nil bucket
// behaves as empty.
type StatBucket map[string]float64

// Get returns the value for a category, 0 when absent. Missing stats never
// propagate as errors into arithmetic.
func (b StatBucket) Get(category string) float64 {
	if b == nil {
		return 0
	}
	return b[category]
}

// Lookup returns the value and whether the category is present. Resolvers use
// this where "absent" and "zero" mean different things.
func (b StatBucket) Lookup(category string) (float64, bool) {
	if b == nil {
		return 0, false
	}
	v, ok := b[category]
	return v, ok
}

// Bucket keys on Player.Stats. Season-keyed projection entries use
// ProjectionKey; the flat keys are the legacy fallback.
const (
	BucketAverage     = "avg"
	BucketTotal       = "total"
	BucketProjTotal   = "projected_total"
	BucketProjAverage = "projected_avg"
	projTotalSuffix   = "projected_total"
	projAverageSuffix = "projected_avg"
)

// ProjectionKey builds the season-keyed bucket name, e.g. "2026_projected_total".
func ProjectionKey(season int, average bool) string {
	suffix := projTotalSuffix
	if average {
		suffix = projAverageSuffix
	}
	return fmt.Sprintf("%d_%s", season, suffix)
}

// Game is a single scheduled pro game for a player's team.
type Game struct {
	Date time.Time
}

// Player is a read-only roster snapshot entry. Name doubles as the diff key
// across polls; nothing else persists between requests.
type Player struct {
	Name         string
	Position     string
	ProTeam      string
	InjuryStatus string
	Stats        map[string]StatBucket
	Schedule     []Game
}

// Bucket returns the named stat bucket, nil-safe.
func (p *Player) Bucket(key string) StatBucket {
	if p == nil || p.Stats == nil {
		return nil
	}
	return p.Stats[key]
}

// Team is a read-only league team snapshot.
type Team struct {
	ID     int
	Name   string
	Wins   int
	Losses int
	Roster []Player
}

// Transaction is one entry from the league activity feed.
type Transaction struct {
	Date   time.Time `json:"date"`
	Team   string    `json:"team"`
	Action string    `json:"action"`
	Player string    `json:"player"`
}

// Weights maps stat category codes to signed scoring weights. Configuration,
// not derived data.
type Weights map[string]float64

// DefaultWeights is a standard points-league scheme.
func DefaultWeights() Weights {
	return Weights{
		CatPoints:   1,
		CatThrees:   1,
		CatRebounds: 1,
		CatAssists:  2,
		CatSteals:   4,
		CatBlocks:   4,
		CatTurnover: -2,
	}
}

// ParseWeights parses a "PTS:1,REB:1.2,TO:-2" style spec. Empty input yields
// the default scheme.
func ParseWeights(spec string) (Weights, error) {
	if strings.TrimSpace(spec) == "" {
		return DefaultWeights(), nil
	}
	w := make(Weights)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx := strings.LastIndex(part, ":")
		if idx <= 0 || idx == len(part)-1 {
			return nil, fmt.Errorf("invalid weight entry %q (want CATEGORY:WEIGHT)", part)
		}
		cat := strings.ToUpper(strings.TrimSpace(part[:idx]))
		val, err := strconv.ParseFloat(strings.TrimSpace(part[idx+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight for %s: %w", cat, err)
		}
		w[cat] = val
	}
	if len(w) == 0 {
		return nil, fmt.Errorf("no weight entries in %q", spec)
	}
	return w, nil
}

// Categories returns the weight categories in deterministic order.
func (w Weights) Categories() []string {
	cats := make([]string, 0, len(w))
	for c := range w {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}
