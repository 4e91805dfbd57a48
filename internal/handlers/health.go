package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"rbi-assist/internal/contextutil"
)

// Pinger reports whether the graph collaborator is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	graph              Pinger
	modelName          string
	corpusSize         int
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(graph Pinger, modelName string, corpusSize int) *HealthHandler {
	return &HealthHandler{
		graph:              graph,
		modelName:          modelName,
		corpusSize:         corpusSize,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "degraded"
	Status string `json:"status"`

	// Model is the active language model identifier.
	Model string `json:"model"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is degraded)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP reports readiness and the active model identifier. The service
// degrades rather than fails when the graph store is down, so a graph outage
// reports 503 with a degraded status while the process keeps serving.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string

	if err := h.graph.Ping(checkCtx); err != nil {
		logger.WarnContext(ctx, "graph store health check failed", "error", err)
		checks["graph_store"] = "error"
		issues = append(issues, "graph_store_unavailable")
	} else {
		checks["graph_store"] = "ok"
	}

	if h.corpusSize > 0 {
		checks["vector_corpus"] = "ok"
	} else {
		checks["vector_corpus"] = "empty"
		issues = append(issues, "vector_corpus_empty")
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Model:     h.modelName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	}
	if len(issues) > 0 {
		response.Issues = issues
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}
