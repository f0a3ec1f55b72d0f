// internal/store/memory.go
//
// In-memory implementation of the run Store interface.
// This is a lightweight persistence layer for generation runs so they can
// be fetched and downloaded after the generating request returns.
//
// Characteristics:
//   - Stores *game.Run objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts; only summary rows survive
//     in the SQLite history.
//   - Errors are returned for missing run IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/chrystiano/mega-sena-generator/internal/game"
)

// Store defines the persistence interface for generation runs.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists a run.
	Save(ctx context.Context, r *game.Run) error

	// Get retrieves a run by ID.
	// Returns an error if the run is not found.
	Get(ctx context.Context, id string) (*game.Run, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu   sync.RWMutex         // guards runs map
	runs map[string]*game.Run // keyed by Run.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{runs: make(map[string]*game.Run)}
}

// Save adds or updates the run in the map.
func (m *memory) Save(ctx context.Context, r *game.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[r.ID] = r
	return nil
}

// Get looks up a run by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.runs[id]; ok {
		return r, nil
	}
	return nil, errors.New("not found")
}
