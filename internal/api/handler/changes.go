package handler

import (
	"net/http"

	"github.com/mbakke/fastbreak/internal/api/respond"
)

// Changes diffs current rosters against the last-observed snapshot and
// reports adds/drops per team. Never cached: every call advances the
// differ's snapshot.
// @Summary Roster changes since last check
// @Description Compares current rosters to the previous snapshot. The first call establishes a baseline and reports no changes.
// @Tags league
// @Produce json
// @Success 200 {object} roster.Report
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/changes [get]
func (h *Handler) Changes(w http.ResponseWriter, r *http.Request) {
	teams, err := h.source.FetchLeague(r.Context())
	if err != nil {
		// Fetch failures never touch the stored snapshot.
		h.writeProviderError(w, err)
		return
	}

	report, err := h.differ.Diff(r.Context(), teams)
	if err != nil {
		h.logger.Error("roster diff failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "DIFF_ERROR", "Failed to compute roster changes")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, report)
}
