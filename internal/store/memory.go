// internal/store/memory.go
//
// In-memory implementation of Store.
// Used for ephemeral sessions, in development/testing, or whenever a restart
// may drop in-progress games.
//
// Characteristics:
//   - Stores game.State values keyed by session ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/wordle/internal/game"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games map
	games map[string]game.State // keyed by session ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]game.State)}
}

// Save stores st as the session's current game, replacing any previous one.
func (m *memory) Save(ctx context.Context, sessionID string, st game.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[sessionID] = st
	return nil
}

// Get returns the session's current game or ErrNotFound.
func (m *memory) Get(ctx context.Context, sessionID string) (game.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if st, ok := m.games[sessionID]; ok {
		return st, nil
	}
	return game.State{}, ErrNotFound
}

// Delete drops the session's game. Deleting a missing session is not an error.
func (m *memory) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, sessionID)
	return nil
}

// Close is a no-op for the memory store.
func (m *memory) Close() error { return nil }
