// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/fastbreak.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mbakke/fastbreak/internal/fantasy"
)

// Config is populated from environment variables. One league/season context
// per process.
type Config struct {
	// League
	LeagueID int
	Season   int
	ESPNS2   string
	SWID     string

	// Scoring
	Weights fantasy.Weights

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Provider
	ProviderTimeout    time.Duration
	ProviderReqsPerMin int

	// Notifications
	WebhookURL string

	// Roster watch (cron spec; empty disables the background poller)
	WatchSchedule string

	// Cache
	CacheEnabled bool

	// Database (optional; durable snapshot store)
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	leagueID := envInt("ESPN_LEAGUE_ID", 0)
	if leagueID == 0 {
		return nil, fmt.Errorf("ESPN_LEAGUE_ID must be set")
	}

	weights, err := fantasy.ParseWeights(envOr("SCORING_WEIGHTS", ""))
	if err != nil {
		return nil, fmt.Errorf("parse SCORING_WEIGHTS: %w", err)
	}

	return &Config{
		LeagueID: leagueID,
		Season:   envInt("ESPN_SEASON", time.Now().Year()+1),
		ESPNS2:   envOr("ESPN_S2", ""),
		SWID:     envOr("ESPN_SWID", ""),

		Weights: weights,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		ProviderTimeout:    time.Duration(envInt("PROVIDER_TIMEOUT_SECONDS", 20)) * time.Second,
		ProviderReqsPerMin: envInt("PROVIDER_REQUESTS_PER_MINUTE", 60),

		WebhookURL: envOr("WEBHOOK_URL", ""),

		WatchSchedule: envOr("WATCH_SCHEDULE", ""),

		CacheEnabled: envBool("CACHE_ENABLED", true),

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 4),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
