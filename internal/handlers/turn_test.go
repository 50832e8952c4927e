package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realmforge/adventure-engine/internal/services"
	"github.com/realmforge/adventure-engine/internal/storage"
	"github.com/realmforge/adventure-engine/internal/worker"
	"github.com/realmforge/adventure-engine/pkg/chat"
	"github.com/realmforge/adventure-engine/pkg/state"
)

func setupTurnHandler(t *testing.T) (*TurnHandler, *worker.TurnProcessor, *services.MockLLM) {
	t.Helper()
	store := storage.NewMemoryStorage()
	mock := services.NewMockLLM()
	processor := worker.NewTurnProcessor(store, mock, testLogger())
	return NewTurnHandler(processor, testLogger()), processor, mock
}

func createTurnTestGame(t *testing.T, processor *worker.TurnProcessor) *state.GameState {
	t.Helper()
	gs, err := processor.NewGame(context.Background(), "fantasy")
	require.NoError(t, err)
	return gs
}

func TestTurnHandler_Success(t *testing.T) {
	handler, processor, _ := setupTurnHandler(t)
	gs := createTurnTestGame(t, processor)

	body := bytes.NewBufferString(`{"action": "look around"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/games/"+gs.ID.String()+"/turn", body)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp chat.TurnResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, gs.ID, resp.GameID)
	assert.NotEmpty(t, resp.Narrative)
	assert.False(t, resp.GameOver)
}

func TestTurnHandler_GameNotFound(t *testing.T) {
	handler, _, _ := setupTurnHandler(t)

	body := bytes.NewBufferString(`{"action": "look"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/games/"+uuid.NewString()+"/turn", body)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTurnHandler_InvalidID(t *testing.T) {
	handler, _, _ := setupTurnHandler(t)

	body := bytes.NewBufferString(`{"action": "look"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/games/not-a-uuid/turn", body)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTurnHandler_MissingAction(t *testing.T) {
	handler, processor, _ := setupTurnHandler(t)
	gs := createTurnTestGame(t, processor)

	body := bytes.NewBufferString(`{}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/games/"+gs.ID.String()+"/turn", body)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTurnHandler_LLMFailure(t *testing.T) {
	handler, processor, mock := setupTurnHandler(t)
	gs := createTurnTestGame(t, processor)

	mock.ChatFunc = func(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
		return nil, errors.New("model unreachable")
	}

	body := bytes.NewBufferString(`{"action": "look"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/games/"+gs.ID.String()+"/turn", body)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestTurnHandler_MethodNotAllowed(t *testing.T) {
	handler, _, _ := setupTurnHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/games/"+uuid.NewString()+"/turn", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
