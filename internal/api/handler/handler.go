// Package handler provides HTTP handlers for all API endpoints. Handlers
// fetch a fresh league snapshot per request and run it through the scoring
// and projection engine; no state is shared between requests except the
// roster differ's snapshot.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mbakke/fastbreak/internal/api/respond"
	"github.com/mbakke/fastbreak/internal/cache"
	"github.com/mbakke/fastbreak/internal/config"
	"github.com/mbakke/fastbreak/internal/fantasy"
	"github.com/mbakke/fastbreak/internal/provider/espn"
	"github.com/mbakke/fastbreak/internal/roster"
)

// LeagueSource is the read-only league data boundary. *espn.Client satisfies
// it; tests substitute a stub.
type LeagueSource interface {
	FetchLeague(ctx context.Context) ([]fantasy.Team, error)
	FetchRecentActivity(ctx context.Context, size int) ([]fantasy.Transaction, error)
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	source LeagueSource
	engine *fantasy.Engine
	differ *roster.Differ
	cache  *cache.Cache
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(source LeagueSource, engine *fantasy.Engine, differ *roster.Differ, c *cache.Cache, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		source: source,
		engine: engine,
		differ: differ,
		cache:  c,
		cfg:    cfg,
		logger: logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and league context.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Fastbreak Fantasy API",
		"version": "1.0.0",
		"status":  "running",
		"league":  h.cfg.LeagueID,
		"season":  h.cfg.Season,
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckProvider reports the league data provider's circuit state.
// @Summary Provider health check
// @Description Returns the upstream provider circuit breaker state and league context.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/provider [get]
func (h *Handler) HealthCheckProvider(w http.ResponseWriter, r *http.Request) {
	out := map[string]interface{}{
		"status":    "healthy",
		"league":    h.cfg.LeagueID,
		"season":    h.cfg.Season,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if reporter, ok := h.source.(interface{ BreakerState() string }); ok {
		state := reporter.BreakerState()
		out["circuit"] = state
		if state != "closed" {
			out["status"] = "degraded"
		}
	}
	respond.WriteJSONObject(w, http.StatusOK, out)
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// serveCached serves a cacheable response: cache hit with ETag revalidation,
// or compute, store, and serve.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, compute func(ctx context.Context) (interface{}, error)) {
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	result, err := compute(r.Context())
	if err != nil {
		h.writeProviderError(w, err)
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_ERROR", "Failed to encode response")
		return
	}

	etag := h.cache.Set(key, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}

// writeProviderError maps a league-data failure onto the wire. Upstream
// errors keep their hint; nothing partial is ever served.
func (h *Handler) writeProviderError(w http.ResponseWriter, err error) {
	h.logger.Error("league data fetch failed", "error", err)

	var apiErr *espn.APIError
	if errors.As(err, &apiErr) {
		respond.WriteErrorHint(w, http.StatusBadGateway, "UPSTREAM_ERROR",
			"League data provider request failed", apiErr.Hint)
		return
	}
	respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_ERROR",
		"League data provider request failed")
}
