package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"rbi-assist/internal/contextutil"
	"rbi-assist/internal/graph"
	"rbi-assist/internal/rag"
)

// AskHandler handles HTTP requests for regulatory questions.
type AskHandler struct {
	engine rag.Engine
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(engine rag.Engine) *AskHandler {
	return &AskHandler{engine: engine}
}

// AskRequest represents the HTTP request payload.
// This mirrors rag.AskRequest but is defined here for HTTP layer separation.
type AskRequest struct {
	Question       string `json:"question"`
	ConversationID string `json:"conversation_id,omitempty"`
	Clear          bool   `json:"clear,omitempty"`
}

// ChunkUsed is one evidence fragment reference in the HTTP response.
type ChunkUsed struct {
	ID      string `json:"id"`
	Preview string `json:"preview"`
}

// AskResponse represents the HTTP response payload.
type AskResponse struct {
	ConversationID string       `json:"conversation_id"`
	Answer         string       `json:"answer"`
	ChunksUsed     []ChunkUsed  `json:"chunks_used"`
	Facts          []graph.Fact `json:"kg_facts"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles POST requests carrying a question plus an opaque
// conversation identifier and an optional clear flag.
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Question == "" {
		logger.WarnContext(ctx, "empty question in request")
		h.writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	resp, err := h.engine.Ask(ctx, rag.AskRequest{
		Question:       req.Question,
		ConversationID: req.ConversationID,
		Clear:          req.Clear,
	})
	if err != nil {
		h.handleEngineError(w, ctx, err, "Failed to answer question")
		return
	}

	chunks := make([]ChunkUsed, len(resp.ChunksUsed))
	for i, c := range resp.ChunksUsed {
		chunks[i] = ChunkUsed{ID: c.ID, Preview: c.Preview}
	}

	out := AskResponse{
		ConversationID: resp.ConversationID,
		Answer:         resp.Answer,
		ChunksUsed:     chunks,
		Facts:          resp.Facts,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to encode response")
		return
	}
}

// handleEngineError maps engine errors to HTTP status codes.
func (h *AskHandler) handleEngineError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "engine error", "error", err)

	var validationErr *rag.ValidationError
	if errors.As(err, &validationErr) {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}

	if errors.Is(err, rag.ErrInvalidInput) {
		h.writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if errors.Is(err, rag.ErrExternalService) {
		h.writeError(w, http.StatusBadGateway, "External service error")
		return
	}

	h.writeError(w, http.StatusInternalServerError, defaultMsg)
}

// writeError writes an error response.
func (h *AskHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
