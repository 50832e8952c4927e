package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/realmforge/adventure-engine/pkg/state"
)

func setupTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewRedisStorage(mr.Addr(), logger), mr
}

func TestRedisStorage_SaveAndLoad(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()
	gs := state.NewGameState(
		state.World{Name: "Eldoria", Type: "fantasy", Description: "A realm of magic."},
		state.Location{ID: "inn", Name: "Inn", Description: "An inn."},
	)
	gs.NPCRelationships["Mira"] = state.ScoreRelation(50)

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
	if loaded.ID != gs.ID || loaded.World.Name != "Eldoria" {
		t.Errorf("Unexpected loaded state: %+v", loaded)
	}
	if rel := loaded.NPCRelationships["Mira"]; rel.Score == nil || *rel.Score != 50 {
		t.Errorf("Relationship did not round-trip: %+v", rel)
	}
}

func TestRedisStorage_LoadMissing(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	gs, err := store.LoadGameState(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Load of missing game must not error: %v", err)
	}
	if gs != nil {
		t.Errorf("Expected nil for missing game, got %+v", gs)
	}
}

func TestRedisStorage_Delete(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

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

func TestRedisStorage_SaveSetsTTL(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	gs := state.NewGameState(state.World{Name: "W"}, state.Location{ID: "a", Name: "A", Description: "a"})
	if err := store.SaveGameState(context.Background(), gs.ID, gs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	ttl := mr.TTL(gameStateKey(gs.ID))
	if ttl != GameStateTTL {
		t.Errorf("Expected TTL %v, got %v", GameStateTTL, ttl)
	}
}

func TestRedisStorage_Ping(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer store.Close()

	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}

	mr.Close()
	if err := store.Ping(context.Background()); err == nil {
		t.Error("Expected ping failure after server shutdown")
	}
}
