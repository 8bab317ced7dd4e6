package roster

import (
	"context"
	"sync"
)

// Store holds the last-observed roster snapshot. Load reports tracked=false
// before the first Replace, which is how the differ recognizes its baseline
// call. Replace swaps the whole snapshot atomically.
type Store interface {
	Load(ctx context.Context) (snap Snapshot, tracked bool, err error)
	Replace(ctx context.Context, snap Snapshot) error
}

// MemoryStore is the default process-lifetime store.
type MemoryStore struct {
	mu      sync.RWMutex
	snap    Snapshot
	tracked bool
}

// NewMemoryStore creates an empty, untracked store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored snapshot.
func (s *MemoryStore) Load(_ context.Context) (Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.tracked {
		return nil, false, nil
	}
	out := make(Snapshot, len(s.snap))
	for team, players := range s.snap {
		out[team] = append([]string(nil), players...)
	}
	return out, true, nil
}

// Replace swaps in the new snapshot.
func (s *MemoryStore) Replace(_ context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.tracked = true
	return nil
}
