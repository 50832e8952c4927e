package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/realmforge/adventure-engine/internal/storage"
	"github.com/realmforge/adventure-engine/internal/worker"
)

// CreateGameRequest asks for a new game in a world of the given type.
// An empty world_type defaults to fantasy.
type CreateGameRequest struct {
	WorldType string `json:"world_type,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GameHandler serves game lifecycle requests:
//
//	POST   /v1/games        create a game (generates a world)
//	GET    /v1/games/{id}   fetch the current snapshot
//	DELETE /v1/games/{id}   delete a game
type GameHandler struct {
	processor *worker.TurnProcessor
	storage   storage.Storage
	logger    *slog.Logger
}

func NewGameHandler(processor *worker.TurnProcessor, store storage.Storage, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		processor: processor,
		storage:   store,
		logger:    logger,
	}
}

func (h *GameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	idPart := strings.TrimPrefix(r.URL.Path, "/v1/games")
	idPart = strings.Trim(idPart, "/")

	switch {
	case r.Method == http.MethodPost && idPart == "":
		h.handleCreate(w, r)
	case r.Method == http.MethodGet && idPart != "":
		h.handleGet(w, r, idPart)
	case r.Method == http.MethodDelete && idPart != "":
		h.handleDelete(w, r, idPart)
	default:
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *GameHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	// An empty body is fine; only malformed JSON is rejected.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	worldType := strings.TrimSpace(req.WorldType)
	if worldType == "" {
		worldType = "fantasy"
	}

	gs, err := h.processor.NewGame(r.Context(), worldType)
	if err != nil {
		h.logger.Error("Failed to create game", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create game")
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(gs); err != nil {
		h.logger.Error("Error encoding game state response", "error", err)
	}
}

func (h *GameHandler) handleGet(w http.ResponseWriter, r *http.Request, idPart string) {
	id, err := uuid.Parse(idPart)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid game id")
		return
	}

	gs, err := h.storage.LoadGameState(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load game state", "game_id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load game")
		return
	}
	if gs == nil {
		writeError(w, h.logger, http.StatusNotFound, "Game not found")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(gs); err != nil {
		h.logger.Error("Error encoding game state response", "error", err)
	}
}

func (h *GameHandler) handleDelete(w http.ResponseWriter, r *http.Request, idPart string) {
	id, err := uuid.Parse(idPart)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid game id")
		return
	}

	if err := h.storage.DeleteGameState(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete game state", "game_id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete game")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message}); err != nil {
		logger.Error("Error encoding error response", "error", err)
	}
}
