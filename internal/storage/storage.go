// Package storage provides gamestate persistence behind a single
// interface with interchangeable backends, selected once by
// configuration at startup.
package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/realmforge/adventure-engine/pkg/state"
)

// Storage defines the interface for gamestate persistence. The core
// pipeline is agnostic to the backing technology; serialization of
// concurrent turns for one game is the caller's job, not the store's.
type Storage interface {
	// Ping tests the backend connection.
	Ping(ctx context.Context) error

	// Close releases the backend connection.
	Close() error

	// SaveGameState persists a snapshot under the game id.
	SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error

	// LoadGameState retrieves a snapshot by game id.
	// Returns nil with no error when the game does not exist.
	LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error)

	// DeleteGameState removes a game.
	DeleteGameState(ctx context.Context, id uuid.UUID) error
}
