// Package espn fetches and normalizes fantasy basketball league data from
// the ESPN fantasy v3 read API.
//
// Auth is cookie-based (espn_s2 + SWID) for private leagues. Requests go
// through a token bucket limiter and a circuit breaker; failures surface as
// *APIError with a human-readable hint, never as partial data.
package espn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/fba"

// APIError is a structured failure from the ESPN API.
type APIError struct {
	StatusCode int
	Message    string
	Hint       string
}

func (e *APIError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s (hint: %s)", e.Message, e.Hint)
	}
	return e.Message
}

// Client fetches league data for one league/season context.
type Client struct {
	httpClient *http.Client
	baseURL    string
	leagueID   int
	season     int
	espnS2     string
	swid       string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient creates an ESPN client. espnS2 and swid may be empty for public
// leagues.
func NewClient(leagueID, season int, espnS2, swid string, requestsPerMinute int, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "espn",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"service", name, "from", from.String(), "to", to.String())
		},
	})
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		leagueID:   leagueID,
		season:     season,
		espnS2:     espnS2,
		swid:       swid,
		limiter:    rate.NewLimiter(rate.Limit(rps), 2),
		breaker:    breaker,
		logger:     logger,
	}
}

// SetBaseURL overrides the API base URL. Used by tests.
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

// BreakerState reports the circuit breaker state ("closed", "half-open",
// "open") for health checks.
func (c *Client) BreakerState() string { return c.breaker.State().String() }

// leagueURL is the endpoint root for this client's league and season.
func (c *Client) leagueURL() string {
	return fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d", c.baseURL, c.season, c.leagueID)
}

// get performs a rate-limited, breaker-guarded GET and returns the body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doGet(ctx, url)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &APIError{
				Message: "ESPN API temporarily unavailable",
				Hint:    "upstream failures tripped the circuit breaker; retry shortly",
			}
		}
		return nil, err
	}
	return body.([]byte), nil
}

func (c *Client) doGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.espnS2 != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.espnS2})
	}
	if c.swid != "" {
		req.AddCookie(&http.Cookie{Name: "SWID", Value: c.swid})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}
	return body, nil
}

func apiError(status int, body []byte) *APIError {
	e := &APIError{
		StatusCode: status,
		Message:    fmt.Sprintf("ESPN API returned %d: %s", status, truncate(body, 200)),
	}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		e.Hint = "private leagues restrict some feeds; check the ESPN_S2 and ESPN_SWID cookies"
	case http.StatusNotFound:
		e.Hint = "check ESPN_LEAGUE_ID and ESPN_SEASON"
	}
	return e
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
