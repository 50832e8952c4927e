package prompts

import (
	"encoding/json"
	"fmt"

	"github.com/realmforge/adventure-engine/pkg/chat"
	"github.com/realmforge/adventure-engine/pkg/state"
)

// DefaultHistoryLimit is the number of recent history entries included
// in the prompt. The full 50-entry log would waste context on old
// turns.
const DefaultHistoryLimit = 12

// promptState is the compact state view serialized into the system
// prompt. It deliberately omits the history log (sent as messages) and
// bookkeeping timestamps.
type promptState struct {
	Location         state.Location            `json:"current_location"`
	Health           int                       `json:"health"`
	Level            int                       `json:"level"`
	Experience       int                       `json:"experience"`
	Inventory        []string                  `json:"player_inventory"`
	Quests           []state.Quest             `json:"active_quests,omitempty"`
	StatusEffects    []state.StatusEffect      `json:"status_effects,omitempty"`
	NPCRelationships map[string]state.Relation `json:"npc_relationships,omitempty"`
	TimeElapsed      int                       `json:"time_elapsed"`
	GameOver         bool                      `json:"game_over"`
}

// Builder constructs the message sequence for one turn using a fluent
// interface.
type Builder struct {
	gs           *state.GameState
	action       string
	historyLimit int
}

// New creates a prompt builder with default settings.
func New() *Builder {
	return &Builder{historyLimit: DefaultHistoryLimit}
}

// WithGameState sets the snapshot the prompt describes.
func (b *Builder) WithGameState(gs *state.GameState) *Builder {
	b.gs = gs
	return b
}

// WithAction sets the player's action for this turn.
func (b *Builder) WithAction(action string) *Builder {
	b.action = action
	return b
}

// WithHistoryLimit sets the history window size.
func (b *Builder) WithHistoryLimit(limit int) *Builder {
	b.historyLimit = limit
	return b
}

// Build constructs the final message array for LLM consumption.
func (b *Builder) Build() ([]chat.ChatMessage, error) {
	if b.gs == nil {
		return nil, fmt.Errorf("gamestate is required")
	}
	if b.action == "" {
		return nil, fmt.Errorf("action is required")
	}

	messages := make([]chat.ChatMessage, 0, b.historyLimit+3)

	systemPrompt := fmt.Sprintf(NarratorSystemPrompt,
		b.gs.World.Name, b.gs.World.Type, b.gs.World.Description)
	messages = append(messages, chat.ChatMessage{
		Role:    chat.ChatRoleSystem,
		Content: systemPrompt,
	})

	stateJSON, err := json.Marshal(toPromptState(b.gs))
	if err != nil {
		return nil, fmt.Errorf("error marshaling prompt state: %w", err)
	}
	messages = append(messages, chat.ChatMessage{
		Role:    chat.ChatRoleSystem,
		Content: "Current game state:\n" + string(stateJSON),
	})

	messages = append(messages, b.historyMessages()...)

	if b.gs.GameOver {
		messages = append(messages, chat.ChatMessage{
			Role:    chat.ChatRoleSystem,
			Content: GameOverSystemPrompt,
		})
	}

	messages = append(messages, chat.ChatMessage{
		Role:    chat.ChatRoleUser,
		Content: b.action,
	})

	return messages, nil
}

// historyMessages converts the windowed tail of the game log into chat
// messages: player actions as user turns, narratives as assistant
// turns. System bookkeeping entries are not replayed to the model.
func (b *Builder) historyMessages() []chat.ChatMessage {
	history := b.gs.GameHistory
	if len(history) > b.historyLimit {
		history = history[len(history)-b.historyLimit:]
	}

	messages := make([]chat.ChatMessage, 0, len(history))
	for _, entry := range history {
		switch entry.Type {
		case state.HistoryAction:
			messages = append(messages, chat.ChatMessage{Role: chat.ChatRoleUser, Content: entry.Text})
		case state.HistoryNarrative:
			messages = append(messages, chat.ChatMessage{Role: chat.ChatRoleAssistant, Content: entry.Text})
		}
	}
	return messages
}

// BuildWorldPrompt returns the one-shot message sequence asking the
// model to generate a new world of the given type.
func BuildWorldPrompt(worldType string) []chat.ChatMessage {
	return []chat.ChatMessage{
		{
			Role:    chat.ChatRoleSystem,
			Content: fmt.Sprintf(WorldGenPrompt, worldType, worldType),
		},
		{
			Role:    chat.ChatRoleUser,
			Content: fmt.Sprintf("Generate a %s world.", worldType),
		},
	}
}

func toPromptState(gs *state.GameState) promptState {
	return promptState{
		Location:         gs.CurrentLocation,
		Health:           gs.Player.Health,
		Level:            gs.Player.Level,
		Experience:       gs.Player.Experience,
		Inventory:        gs.Player.Inventory,
		Quests:           gs.Player.Quests,
		StatusEffects:    gs.Player.StatusEffects,
		NPCRelationships: gs.NPCRelationships,
		TimeElapsed:      gs.TimeElapsed,
		GameOver:         gs.GameOver,
	}
}
