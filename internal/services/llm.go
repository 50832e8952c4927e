package services

import (
	"context"

	"github.com/realmforge/adventure-engine/pkg/chat"
)

// LLMService defines the interface for interacting with an LLM API.
// The core treats the model as synchronous text-in/text-out; any
// failure here is an infrastructure failure, surfaced to the caller,
// never a content-pipeline failure.
type LLMService interface {
	// InitModel prepares the model on startup.
	InitModel(ctx context.Context, modelName string) error

	// Chat sends a role-tagged message sequence and returns one
	// opaque response string.
	Chat(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error)
}
