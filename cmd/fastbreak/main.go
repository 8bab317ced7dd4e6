// Command fastbreak is the Fastbreak CLI: the same league core as the API
// server, printed to stdout.
//
// Usage:
//
//	fastbreak teams
//	fastbreak rosters
//	fastbreak summary
//	fastbreak changes
//	fastbreak watch --schedule "*/15 * * * *"
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mbakke/fastbreak/internal/config"
	"github.com/mbakke/fastbreak/internal/db"
	"github.com/mbakke/fastbreak/internal/fantasy"
	"github.com/mbakke/fastbreak/internal/notify"
	"github.com/mbakke/fastbreak/internal/provider/espn"
	"github.com/mbakke/fastbreak/internal/roster"
	"github.com/mbakke/fastbreak/internal/watch"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "fastbreak",
		Short: "Fantasy basketball roster and projection CLI",
	}

	root.AddCommand(teamsCmd())
	root.AddCommand(rostersCmd())
	root.AddCommand(summaryCmd())
	root.AddCommand(changesCmd())
	root.AddCommand(watchCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runEnv is the shared setup every subcommand needs.
type runEnv struct {
	cfg    *config.Config
	source *espn.Client
	engine *fantasy.Engine
}

func setup() (*runEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	source := espn.NewClient(cfg.LeagueID, cfg.Season, cfg.ESPNS2, cfg.SWID,
		cfg.ProviderReqsPerMin, cfg.ProviderTimeout, logger)
	return &runEnv{
		cfg:    cfg,
		source: source,
		engine: fantasy.NewEngine(cfg.Season, cfg.Weights),
	}, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func teamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List teams with win/loss records",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup()
			if err != nil {
				return err
			}
			teams, err := env.source.FetchLeague(cmd.Context())
			if err != nil {
				return err
			}
			type teamInfo struct {
				ID     int    `json:"id"`
				Name   string `json:"name"`
				Wins   int    `json:"wins"`
				Losses int    `json:"losses"`
			}
			out := make([]teamInfo, 0, len(teams))
			for _, t := range teams {
				out = append(out, teamInfo{t.ID, t.Name, t.Wins, t.Losses})
			}
			return printJSON(out)
		},
	}
}

func rostersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rosters",
		Short: "Full rosters with scored stats and weekly projections",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup()
			if err != nil {
				return err
			}
			teams, err := env.source.FetchLeague(cmd.Context())
			if err != nil {
				return err
			}
			window := env.engine.CurrentWindow()
			out := make([]fantasy.TeamRollup, 0, len(teams))
			for i := range teams {
				out = append(out, env.engine.TeamRollup(&teams[i], window, true))
			}
			return printJSON(out)
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "League rollup ordered by projected weekly fantasy points",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup()
			if err != nil {
				return err
			}
			teams, err := env.source.FetchLeague(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(env.engine.LeagueSummary(teams, env.engine.CurrentWindow()))
		},
	}
}

func changesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "changes",
		Short: "Diff rosters against the stored snapshot",
		Long: "Compares current rosters to the last stored snapshot and prints adds/drops.\n" +
			"Requires DATABASE_URL; without a durable store every run would be a baseline.",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup()
			if err != nil {
				return err
			}
			differ, cleanup, err := buildDiffer(cmd.Context(), env.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			teams, err := env.source.FetchLeague(cmd.Context())
			if err != nil {
				return err
			}
			report, err := differ.Diff(cmd.Context(), teams)
			if err != nil {
				return err
			}
			return printJSON(report)
		},
	}
}

func watchCmd() *cobra.Command {
	var schedule string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll rosters on a schedule and push webhook notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup()
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			differ, cleanup, err := buildDiffer(ctx, env.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return watch.New(env.source, differ, logger).Start(ctx, schedule)
		},
	}
	cmd.Flags().StringVar(&schedule, "schedule", "*/15 * * * *", "Cron schedule for roster polls")
	return cmd
}

// buildDiffer wires the differ with the webhook sender and the configured
// snapshot store. The cleanup closes the database pool when one was opened.
func buildDiffer(ctx context.Context, cfg *config.Config) (*roster.Differ, func(), error) {
	sender := notify.NewWebhookSender(cfg.WebhookURL, logger)

	var store roster.Store = roster.NewMemoryStore()
	cleanup := func() {}
	if cfg.DatabaseURL != "" {
		pool, err := db.New(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		store = roster.NewPGStore(pool.Pool, cfg.LeagueID)
		cleanup = pool.Close
	}

	return roster.NewDiffer(store, sender, logger), cleanup, nil
}
