// Package engine exposes the core turn and world-generation pipelines
// as pure functions. Given the same inputs they produce the same
// outputs; the only non-determinism is the rng handed to GenerateWorld.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/realmforge/adventure-engine/pkg/response"
	"github.com/realmforge/adventure-engine/pkg/state"
	"github.com/realmforge/adventure-engine/pkg/worldgen"
)

// GenericNarrative is shown when a model response carried no usable
// narrative text at all. The player is never shown a raw error for
// content-pipeline failures.
const GenericNarrative = "The world seems to pause for a moment, then carries on. Nothing of note happens."

// ApplyTurn runs one full turn pipeline: extract the narrative and
// state-changes sections from the raw model response, decode the
// changes, validate them against the previous snapshot, and reduce.
// The previous snapshot is never mutated. ApplyTurn cannot fail for
// content reasons; malformed model output degrades to a partial or
// empty change set.
func ApplyTurn(prev *state.GameState, action, modelResponse string, logger *slog.Logger) (string, *state.GameState) {
	narrative, rawChanges := response.Extract(modelResponse)
	if narrative == "" {
		narrative = GenericNarrative
	}

	cs := response.Decode(rawChanges, logger)
	validated := state.Validate(cs, prev)

	if logger != nil && !cs.IsEmpty() && validated.IsEmpty() {
		logger.Debug("Change set fully rejected by validation", "game_id", prev.ID.String())
	}

	next := state.NewReducer(prev, validated, logger).Apply(action, narrative)
	return narrative, next
}

// GenerateWorld runs the one-shot world pipeline. An unparseable
// response yields the fixed fallback world.
func GenerateWorld(worldType, modelResponse string, rng *rand.Rand, logger *slog.Logger) *worldgen.World {
	return worldgen.Generate(worldType, modelResponse, rng, logger)
}

// NewGame seeds an initial game state from a generated world: the
// starting location is discovered, the world's NPCs start at a neutral
// relationship, and the opening scene is logged.
func NewGame(world *worldgen.World) *state.GameState {
	start := state.Location{
		ID:          state.NormalizeLocationID(world.StartingLocation.Name),
		Name:        world.StartingLocation.Name,
		Description: world.StartingLocation.Description,
	}

	gs := state.NewGameState(state.World{
		Name:        world.Name,
		Type:        world.Type,
		Description: world.Description,
	}, start)

	for _, npc := range world.NPCs {
		gs.NPCRelationships[npc.Name] = state.ScoreRelation(50)
	}

	gs.AppendHistory(state.HistorySystem, fmt.Sprintf(
		"Welcome to %s. It is %s, under %s, in %s. You find yourself at %s.",
		world.Name,
		world.Environment.TimeOfDay,
		world.Environment.Weather,
		world.Environment.Season,
		start.Name,
	))

	return gs
}
