package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/realmforge/adventure-engine/internal/worker"
	"github.com/realmforge/adventure-engine/pkg/chat"
)

// TurnHandler serves POST /v1/games/{id}/turn: one player action
// against a game session.
type TurnHandler struct {
	processor *worker.TurnProcessor
	logger    *slog.Logger
}

func NewTurnHandler(processor *worker.TurnProcessor, logger *slog.Logger) *TurnHandler {
	return &TurnHandler{
		processor: processor,
		logger:    logger,
	}
}

func (h *TurnHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	idPart := strings.TrimPrefix(r.URL.Path, "/v1/games/")
	idPart = strings.TrimSuffix(idPart, "/turn")
	id, err := uuid.Parse(idPart)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid game id")
		return
	}

	var req chat.TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body. Expected JSON with 'action' field.")
		return
	}
	req.GameID = id

	if err := req.Validate(); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	resp, _, err := h.processor.ProcessTurn(r.Context(), req)
	if err != nil {
		if strings.Contains(err.Error(), "game not found") {
			writeError(w, h.logger, http.StatusNotFound, "Game not found")
			return
		}
		// True infrastructure failure: model unreachable or store
		// unavailable. Content-pipeline failures never reach here.
		h.logger.Error("Turn processing failed", "game_id", id, "error", err)
		writeError(w, h.logger, http.StatusBadGateway, "Failed to process turn. Please try again.")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Error encoding turn response", "error", err)
	}
}
