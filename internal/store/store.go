// Package store keeps the current game for each browser session.
//
// A session has at most one game. Saving a new game replaces the old one;
// finished games are not archived anywhere.
package store

import (
	"context"
	"errors"

	"github.com/robalobadob/wordle/internal/game"
)

// ErrNotFound is returned by Get when a session has no game.
var ErrNotFound = errors.New("store: not found")

// Store defines the persistence interface for session games.
// Implementations: memory (NewMemoryStore) and SQLite (OpenSQLite).
type Store interface {
	// Save persists st as the current game of sessionID.
	Save(ctx context.Context, sessionID string, st game.State) error

	// Get retrieves the current game of sessionID.
	// Returns ErrNotFound if the session has none.
	Get(ctx context.Context, sessionID string) (game.State, error)

	// Delete removes the session's game.
	Delete(ctx context.Context, sessionID string) error

	// Close releases underlying resources.
	Close() error
}
