package worker

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/realmforge/adventure-engine/internal/services"
	"github.com/realmforge/adventure-engine/internal/storage"
	"github.com/realmforge/adventure-engine/pkg/chat"
	"github.com/realmforge/adventure-engine/pkg/engine"
	"github.com/realmforge/adventure-engine/pkg/prompts"
	"github.com/realmforge/adventure-engine/pkg/state"
)

// LLMTimeout bounds one model call.
const LLMTimeout = 60 * time.Second

// TurnProcessor orchestrates game creation and turn processing: load
// state, build the prompt, call the model, run the engine pipeline,
// save. Turns for the same game are serialized here (single-flight per
// game id); the core pipeline itself provides no versioning primitive.
type TurnProcessor struct {
	storage storage.Storage
	llm     services.LLMService
	logger  *slog.Logger
	rng     *rand.Rand

	locksMu   sync.Mutex
	gameLocks map[uuid.UUID]*sync.Mutex
}

// NewTurnProcessor creates a turn processor.
func NewTurnProcessor(store storage.Storage, llm services.LLMService, logger *slog.Logger) *TurnProcessor {
	return &TurnProcessor{
		storage:   store,
		llm:       llm,
		logger:    logger,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		gameLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// WithRand overrides the randomness source used for world synthesis.
// Returns the TurnProcessor for method chaining.
func (p *TurnProcessor) WithRand(rng *rand.Rand) *TurnProcessor {
	p.rng = rng
	return p
}

// lockFor returns the per-game mutex, creating it on first use. Locks
// are never removed; a session's lock is a few bytes and games are
// bounded by storage TTL anyway.
func (p *TurnProcessor) lockFor(id uuid.UUID) *sync.Mutex {
	p.locksMu.Lock()
	defer p.locksMu.Unlock()
	lock, ok := p.gameLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		p.gameLocks[id] = lock
	}
	return lock
}

// NewGame generates a world of the requested type and seeds a fresh
// game state. World generation always succeeds if storage is up: an
// unreachable model or unparseable response degrades to the fixed
// fallback world.
func (p *TurnProcessor) NewGame(ctx context.Context, worldType string) (*state.GameState, error) {
	llmCtx, cancel := context.WithTimeout(ctx, LLMTimeout)
	defer cancel()

	modelResponse := ""
	resp, err := p.llm.Chat(llmCtx, prompts.BuildWorldPrompt(worldType))
	if err != nil {
		p.logger.Warn("World generation LLM call failed, using fallback world",
			"error", err, "world_type", worldType)
	} else {
		modelResponse = resp.Message
	}

	world := engine.GenerateWorld(worldType, modelResponse, p.rng, p.logger)
	gs := engine.NewGame(world)

	if err := p.storage.SaveGameState(ctx, gs.ID, gs); err != nil {
		return nil, fmt.Errorf("failed to save new game state: %w", err)
	}

	p.logger.Info("New game created",
		"game_id", gs.ID.String(),
		"world", world.Name,
		"world_type", world.Type)
	return gs, nil
}

// ProcessTurn runs one full turn. A model failure is a hard failure
// with no state write; everything after a successful model call
// degrades gracefully inside the engine.
func (p *TurnProcessor) ProcessTurn(ctx context.Context, req chat.TurnRequest) (*chat.TurnResponse, *state.GameState, error) {
	lock := p.lockFor(req.GameID)
	lock.Lock()
	defer lock.Unlock()

	gs, err := p.storage.LoadGameState(ctx, req.GameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load game state: %w", err)
	}
	if gs == nil {
		return nil, nil, fmt.Errorf("game not found: %s", req.GameID.String())
	}

	messages, err := prompts.New().
		WithGameState(gs).
		WithAction(req.Action).
		Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	llmCtx, cancel := context.WithTimeout(ctx, LLMTimeout)
	defer cancel()

	p.logger.Debug("Sending turn to LLM", "game_id", gs.ID.String(), "action", req.Action)
	resp, err := p.llm.Chat(llmCtx, messages)
	if err != nil {
		// No write occurs on model failure; the saved snapshot is
		// untouched.
		return nil, nil, fmt.Errorf("LLM chat failed: %w", err)
	}

	narrative, next := engine.ApplyTurn(gs, req.Action, resp.Message, p.logger)

	if err := p.storage.SaveGameState(ctx, next.ID, next); err != nil {
		return nil, nil, fmt.Errorf("failed to save game state: %w", err)
	}

	return &chat.TurnResponse{
		GameID:    next.ID,
		Narrative: narrative,
		GameOver:  next.GameOver,
	}, next, nil
}
