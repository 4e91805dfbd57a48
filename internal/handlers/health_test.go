package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(context.Context) error { return s.err }

func TestHealthHandler_Healthy(t *testing.T) {
	handler := NewHealthHandler(&stubPinger{}, "llama-3.3-70b-versatile", 42)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want healthy", resp.Status)
	}
	if resp.Model != "llama-3.3-70b-versatile" {
		t.Errorf("model = %q", resp.Model)
	}
	if resp.Checks["graph_store"] != "ok" || resp.Checks["vector_corpus"] != "ok" {
		t.Errorf("checks = %v, want both ok", resp.Checks)
	}
	if len(resp.Issues) != 0 {
		t.Errorf("issues = %v, want none", resp.Issues)
	}
	if resp.Timestamp == "" {
		t.Error("timestamp is empty")
	}
}

func TestHealthHandler_GraphDown(t *testing.T) {
	handler := NewHealthHandler(&stubPinger{err: errors.New("connection refused")}, "model", 42)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "degraded" {
		t.Errorf("status = %q, want degraded", resp.Status)
	}
	if resp.Checks["graph_store"] != "error" {
		t.Errorf("graph_store check = %q, want error", resp.Checks["graph_store"])
	}
	if len(resp.Issues) != 1 || resp.Issues[0] != "graph_store_unavailable" {
		t.Errorf("issues = %v, want [graph_store_unavailable]", resp.Issues)
	}
}

func TestHealthHandler_EmptyCorpus(t *testing.T) {
	handler := NewHealthHandler(&stubPinger{}, "model", 0)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Checks["vector_corpus"] != "empty" {
		t.Errorf("vector_corpus check = %q, want empty", resp.Checks["vector_corpus"])
	}
	if len(resp.Issues) != 1 || resp.Issues[0] != "vector_corpus_empty" {
		t.Errorf("issues = %v, want [vector_corpus_empty]", resp.Issues)
	}
}

func TestHealthHandler_MethodNotAllowed(t *testing.T) {
	handler := NewHealthHandler(&stubPinger{}, "model", 1)

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
