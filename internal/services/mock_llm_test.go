package services

import (
	"context"
	"errors"
	"testing"

	"github.com/realmforge/adventure-engine/pkg/chat"
	"github.com/realmforge/adventure-engine/pkg/prompts"
)

func TestMockLLM_DefaultTurnResponse(t *testing.T) {
	mock := NewMockLLM()

	resp, err := mock.Chat(context.Background(), []chat.ChatMessage{
		{Role: chat.ChatRoleUser, Content: "look around"},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if resp.Message != DefaultMockTurnResponse {
		t.Errorf("Expected default turn response, got %q", resp.Message)
	}
}

func TestMockLLM_WorldPromptDetection(t *testing.T) {
	mock := NewMockLLM()

	resp, err := mock.Chat(context.Background(), prompts.BuildWorldPrompt("fantasy"))
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if resp.Message != DefaultMockWorldResponse {
		t.Errorf("Expected world response for world prompt, got %q", resp.Message)
	}
}

func TestMockLLM_Overrides(t *testing.T) {
	mock := NewMockLLM()
	mock.ChatFunc = func(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
		return nil, errors.New("model unavailable")
	}
	mock.InitModelFunc = func(ctx context.Context, modelName string) error {
		return errors.New("pull failed")
	}

	if _, err := mock.Chat(context.Background(), nil); err == nil {
		t.Error("Expected chat override error")
	}
	if err := mock.InitModel(context.Background(), "test-model"); err == nil {
		t.Error("Expected init override error")
	}
}

func TestMockLLM_TracksCalls(t *testing.T) {
	mock := NewMockLLM()

	_ = mock.InitModel(context.Background(), "model-a")
	_, _ = mock.Chat(context.Background(), []chat.ChatMessage{{Role: chat.ChatRoleUser, Content: "hi"}})
	_, _ = mock.Chat(context.Background(), []chat.ChatMessage{{Role: chat.ChatRoleUser, Content: "again"}})

	if len(mock.InitModelCalls) != 1 || mock.InitModelCalls[0] != "model-a" {
		t.Errorf("Unexpected init calls: %v", mock.InitModelCalls)
	}
	if len(mock.ChatCalls) != 2 {
		t.Errorf("Expected 2 chat calls, got %d", len(mock.ChatCalls))
	}
	if mock.ChatCalls[1][0].Content != "again" {
		t.Errorf("Unexpected recorded call: %+v", mock.ChatCalls[1])
	}
}
