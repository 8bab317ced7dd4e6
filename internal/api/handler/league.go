package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mbakke/fastbreak/internal/api/respond"
	"github.com/mbakke/fastbreak/internal/cache"
)

// TeamInfo is the basic team listing entry.
type TeamInfo struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Teams lists the league's teams with their records.
// @Summary List teams
// @Description Returns id, name, and win/loss record for every team.
// @Tags league
// @Produce json
// @Success 200 {array} handler.TeamInfo
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/teams [get]
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "teams", cache.TTLTeams, func(ctx context.Context) (interface{}, error) {
		teams, err := h.source.FetchLeague(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]TeamInfo, 0, len(teams))
		for _, t := range teams {
			out = append(out, TeamInfo{ID: t.ID, Name: t.Name, Wins: t.Wins, Losses: t.Losses})
		}
		return out, nil
	})
}

// Rosters returns every team's roster with computed stats, projections, and
// weekly extrapolations, plus team-level rollups.
// @Summary Full rosters with projections
// @Description Per team: season totals, projected weekly totals, and per-player computed figures.
// @Tags league
// @Produce json
// @Success 200 {array} fantasy.TeamRollup
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/rosters [get]
func (h *Handler) Rosters(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "rosters", cache.TTLRosters, func(ctx context.Context) (interface{}, error) {
		teams, err := h.source.FetchLeague(ctx)
		if err != nil {
			return nil, err
		}
		window := h.engine.CurrentWindow()
		out := make([]interface{}, 0, len(teams))
		for i := range teams {
			out = append(out, h.engine.TeamRollup(&teams[i], window, true))
		}
		return out, nil
	})
}

// Summary returns the league rollup ordered by projected weekly fantasy
// points.
// @Summary League summary
// @Description Team rollups sorted by projected weekly FPTS descending; ties keep league order.
// @Tags league
// @Produce json
// @Success 200 {array} fantasy.TeamRollup
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "summary", cache.TTLSummary, func(ctx context.Context) (interface{}, error) {
		teams, err := h.source.FetchLeague(ctx)
		if err != nil {
			return nil, err
		}
		return h.engine.LeagueSummary(teams, h.engine.CurrentWindow()), nil
	})
}

// Transactions returns recent league activity.
// @Summary Recent transactions
// @Description Recent adds, drops, and trades from the league activity feed.
// @Tags league
// @Produce json
// @Param size query int false "Maximum entries" default(10)
// @Success 200 {array} fantasy.Transaction
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/transactions [get]
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	size := 10
	if v := r.URL.Query().Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			size = n
		}
	}

	activity, err := h.source.FetchRecentActivity(r.Context(), size)
	if err != nil {
		h.writeProviderError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, activity)
}
