package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/realmforge/adventure-engine/pkg/state"
)

func setupTestSQLite(t *testing.T) *SQLiteStorage {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"), logger)
	if err != nil {
		t.Fatalf("Failed to open sqlite storage: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStorage_SaveAndLoad(t *testing.T) {
	store := setupTestSQLite(t)
	ctx := context.Background()

	gs := state.NewGameState(
		state.World{Name: "Eldoria", Type: "fantasy", Description: "A realm of magic."},
		state.Location{ID: "inn", Name: "Inn", Description: "An inn."},
	)
	gs.Player.Quests = []state.Quest{{Title: "Find the key", Objectives: []string{"search the cellar"}}}

	if err := store.SaveGameState(ctx, gs.ID, gs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.LoadGameState(ctx, gs.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected game state, got nil")
	}
	if loaded.ID != gs.ID || len(loaded.Player.Quests) != 1 {
		t.Errorf("Unexpected loaded state: %+v", loaded)
	}
}

func TestSQLiteStorage_Upsert(t *testing.T) {
	store := setupTestSQLite(t)
	ctx := context.Background()

	gs := state.NewGameState(state.World{Name: "W"}, state.Location{ID: "a", Name: "A", Description: "a"})
	if err := store.SaveGameState(ctx, gs.ID, gs); err != nil {
		t.Fatalf("First save failed: %v", err)
	}

	gs.Player.Health = 42
	if err := store.SaveGameState(ctx, gs.ID, gs); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	loaded, err := store.LoadGameState(ctx, gs.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Player.Health != 42 {
		t.Errorf("Expected updated health 42, got %d", loaded.Player.Health)
	}
}

func TestSQLiteStorage_LoadMissing(t *testing.T) {
	store := setupTestSQLite(t)

	gs, err := store.LoadGameState(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Load of missing game must not error: %v", err)
	}
	if gs != nil {
		t.Errorf("Expected nil for missing game, got %+v", gs)
	}
}

func TestSQLiteStorage_Delete(t *testing.T) {
	store := setupTestSQLite(t)
	ctx := context.Background()

	gs := state.NewGameState(state.World{Name: "W"}, state.Location{ID: "a", Name: "A", Description: "a"})
	if err := store.SaveGameState(ctx, gs.ID, gs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.DeleteGameState(ctx, gs.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	loaded, err := store.LoadGameState(ctx, gs.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != nil {
		t.Error("Expected game deleted")
	}
}

func TestSQLiteStorage_Ping(t *testing.T) {
	store := setupTestSQLite(t)
	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
