package chat

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	ChatRoleUser      = "user"      // Player
	ChatRoleAssistant = "assistant" // Narrator
	ChatRoleSystem    = "system"    // Engine instructions
)

// ChatMessage is a single role-tagged message sent to or received from
// the LLM. The shape matches the message format shared by the Anthropic
// and Ollama chat APIs.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse is the raw result of one LLM call.
type ChatResponse struct {
	Message string `json:"message,omitempty"`
}

// TurnRequest is a player action submitted against a game session.
type TurnRequest struct {
	GameID uuid.UUID `json:"game_id"`
	Action string    `json:"action"`
}

// TurnResponse is returned after a turn has been fully applied.
type TurnResponse struct {
	GameID    uuid.UUID `json:"game_id,omitempty"`
	Narrative string    `json:"narrative,omitempty"`
	GameOver  bool      `json:"game_over,omitempty"`
	Error     string    `json:"error,omitempty"`
}

func (tr *TurnRequest) Validate() error {
	if tr.Action == "" {
		return fmt.Errorf("action cannot be empty")
	}
	return nil
}
