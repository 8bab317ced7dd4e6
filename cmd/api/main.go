// Command api is the Fastbreak fantasy basketball API server.
//
// Usage:
//
//	fastbreak-api
//	API_PORT=8080 fastbreak-api

// @title Fastbreak Fantasy API
// @version 1.0.0
// @description Fantasy basketball roster, scoring, and projection API backed by the ESPN fantasy v3 read API. Exposes team listings, scored rosters with weekly projections, league summaries, and roster change detection.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/mbakke/fastbreak/internal/api"
	"github.com/mbakke/fastbreak/internal/cache"
	"github.com/mbakke/fastbreak/internal/config"
	"github.com/mbakke/fastbreak/internal/db"
	"github.com/mbakke/fastbreak/internal/fantasy"
	"github.com/mbakke/fastbreak/internal/notify"
	"github.com/mbakke/fastbreak/internal/provider/espn"
	"github.com/mbakke/fastbreak/internal/roster"
	"github.com/mbakke/fastbreak/internal/watch"

	_ "github.com/mbakke/fastbreak/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// League data provider
	source := espn.NewClient(cfg.LeagueID, cfg.Season, cfg.ESPNS2, cfg.SWID,
		cfg.ProviderReqsPerMin, cfg.ProviderTimeout, logger)
	logger.Info("League data provider ready", "league", cfg.LeagueID, "season", cfg.Season)

	// Scoring and projection engine
	engine := fantasy.NewEngine(cfg.Season, cfg.Weights)

	// Snapshot store: Postgres-backed when a database is configured, else
	// in-memory for the process lifetime.
	var store roster.Store = roster.NewMemoryStore()
	if cfg.DatabaseURL != "" {
		pool, err := db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		store = roster.NewPGStore(pool.Pool, cfg.LeagueID)
		logger.Info("Durable snapshot store enabled",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
	}

	// Notification sink (nil-safe when no webhook is configured)
	sender := notify.NewWebhookSender(cfg.WebhookURL, logger)
	if sender != nil {
		logger.Info("Webhook notifications enabled")
	} else {
		logger.Info("Webhook notifications disabled (no WEBHOOK_URL)")
	}

	differ := roster.NewDiffer(store, sender, logger)

	// Background roster watch (optional)
	if cfg.WatchSchedule != "" {
		watcher := watch.New(source, differ, logger)
		go func() {
			if err := watcher.Start(ctx, cfg.WatchSchedule); err != nil {
				logger.Error("Roster watch failed to start", "error", err)
			}
		}()
	}

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Create router
	router := api.NewRouter(source, engine, differ, appCache, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Fastbreak Fantasy API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
