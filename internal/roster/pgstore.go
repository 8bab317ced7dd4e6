package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists the snapshot in Postgres so the diff baseline survives
// restarts. One row per league; only the current snapshot is kept, never
// history.
type PGStore struct {
	pool     *pgxpool.Pool
	leagueID int
}

// NewPGStore creates a Postgres-backed store for one league.
func NewPGStore(pool *pgxpool.Pool, leagueID int) *PGStore {
	return &PGStore{pool: pool, leagueID: leagueID}
}

// Load reads the stored snapshot. A missing row means the baseline has not
// been established yet.
func (s *PGStore) Load(ctx context.Context) (Snapshot, bool, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, "load_roster_snapshot", s.leagueID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load roster snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, false, fmt.Errorf("decode roster snapshot: %w", err)
	}
	return snap, true, nil
}

// Replace upserts the league's snapshot row.
func (s *PGStore) Replace(ctx context.Context, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode roster snapshot: %w", err)
	}
	if _, err := s.pool.Exec(ctx, "replace_roster_snapshot", s.leagueID, raw); err != nil {
		return fmt.Errorf("replace roster snapshot: %w", err)
	}
	return nil
}
