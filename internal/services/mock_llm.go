package services

import (
	"context"
	"strings"
	"sync"

	"github.com/realmforge/adventure-engine/pkg/chat"
)

// MockLLM is an LLMService for tests and local development. By default
// it returns a well-formed turn response, or a world definition when
// the prompt looks like a world-generation request.
type MockLLM struct {
	InitModelFunc func(ctx context.Context, modelName string) error
	ChatFunc      func(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error)

	// Track calls for assertions
	InitModelCalls []string
	ChatCalls      [][]chat.ChatMessage

	mu sync.Mutex // protects the fields above
}

// NewMockLLM creates a mock LLM service.
func NewMockLLM() *MockLLM {
	return &MockLLM{
		InitModelCalls: make([]string, 0),
		ChatCalls:      make([][]chat.ChatMessage, 0),
	}
}

func (m *MockLLM) InitModel(ctx context.Context, modelName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InitModelCalls = append(m.InitModelCalls, modelName)
	if m.InitModelFunc != nil {
		return m.InitModelFunc(ctx, modelName)
	}
	return nil
}

func (m *MockLLM) Chat(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ChatCalls = append(m.ChatCalls, messages)
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, messages)
	}

	if isWorldPrompt(messages) {
		return &chat.ChatResponse{Message: DefaultMockWorldResponse}, nil
	}
	return &chat.ChatResponse{Message: DefaultMockTurnResponse}, nil
}

func isWorldPrompt(messages []chat.ChatMessage) bool {
	return len(messages) > 0 &&
		messages[0].Role == chat.ChatRoleSystem &&
		strings.HasPrefix(messages[0].Content, "Create a new")
}

// DefaultMockTurnResponse is a well-formed turn response with no state
// changes.
const DefaultMockTurnResponse = `NARRATIVE:
You look around carefully, taking in your surroundings. Nothing has changed, but you feel more certain of your footing.

STATE_CHANGES:
{}`

// DefaultMockWorldResponse is a well-formed world definition.
const DefaultMockWorldResponse = `{
  "name": "Thornwick",
  "type": "fantasy",
  "description": "A borderland realm of misty moors and half-ruined watchtowers, where old treaties are remembered and older grudges more so.",
  "startingLocation": {"name": "The Crooked Lantern", "description": "A low-beamed tavern at the edge of the moor road."},
  "factions": [{"name": "The Wardens", "description": "Keepers of the border towers."}],
  "keyItems": ["a sealed letter", "a tower signal horn"],
  "potentialPlotHooks": ["The western tower has not signaled in three nights."]
}`
