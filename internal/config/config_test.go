package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// setRequired sets the variables without which Load fails, pointing the
// database at a temp directory so no test pollutes the working tree.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("EMBEDDING_VECTOR_SIZE", "768")
	t.Setenv("CHUNKS_DIR", t.TempDir())
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.EmbeddingVectorSize != 768 {
		t.Errorf("EmbeddingVectorSize = %d, want 768", cfg.EmbeddingVectorSize)
	}
	if cfg.TopK != 5 {
		t.Errorf("TopK = %d, want 5", cfg.TopK)
	}
	if cfg.FollowupThreshold != 0.55 {
		t.Errorf("FollowupThreshold = %v, want 0.55", cfg.FollowupThreshold)
	}
	if cfg.ConversationTTL != 2*time.Hour {
		t.Errorf("ConversationTTL = %v, want 2h", cfg.ConversationTTL)
	}
	if cfg.ConversationMax != 1024 {
		t.Errorf("ConversationMax = %d, want 1024", cfg.ConversationMax)
	}
	if cfg.LLMModelName != "llama-3.3-70b-versatile" {
		t.Errorf("LLMModelName = %q", cfg.LLMModelName)
	}
	if cfg.EmbeddingModelName != "all-mpnet-base-v2" {
		t.Errorf("EmbeddingModelName = %q", cfg.EmbeddingModelName)
	}
	if cfg.Neo4jURI != "bolt://localhost:7687" {
		t.Errorf("Neo4jURI = %q", cfg.Neo4jURI)
	}
	if cfg.APIPort != "9000" {
		t.Errorf("APIPort = %q, want 9000", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("TOP_K", "12")
	t.Setenv("FOLLOWUP_SIM_THRESHOLD", "0.7")
	t.Setenv("CONVERSATION_TTL", "30m")
	t.Setenv("CONVERSATION_MAX", "256")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("NEO4J_URI", "bolt://graph:7687")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TopK != 12 {
		t.Errorf("TopK = %d, want 12", cfg.TopK)
	}
	if cfg.FollowupThreshold != 0.7 {
		t.Errorf("FollowupThreshold = %v, want 0.7", cfg.FollowupThreshold)
	}
	if cfg.ConversationTTL != 30*time.Minute {
		t.Errorf("ConversationTTL = %v, want 30m", cfg.ConversationTTL)
	}
	if cfg.ConversationMax != 256 {
		t.Errorf("ConversationMax = %d, want 256", cfg.ConversationMax)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if cfg.Neo4jURI != "bolt://graph:7687" {
		t.Errorf("Neo4jURI = %q", cfg.Neo4jURI)
	}
}

func TestLoad_RequiredFields(t *testing.T) {
	t.Run("missing vector size", func(t *testing.T) {
		t.Setenv("EMBEDDING_VECTOR_SIZE", "")
		t.Setenv("CHUNKS_DIR", t.TempDir())

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "EMBEDDING_VECTOR_SIZE") {
			t.Errorf("Load() error = %v, want EMBEDDING_VECTOR_SIZE error", err)
		}
	})

	t.Run("missing chunks dir", func(t *testing.T) {
		t.Setenv("EMBEDDING_VECTOR_SIZE", "768")
		t.Setenv("CHUNKS_DIR", "")

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "CHUNKS_DIR") {
			t.Errorf("Load() error = %v, want CHUNKS_DIR error", err)
		}
	})
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric vector size", "EMBEDDING_VECTOR_SIZE", "many"},
		{"zero vector size", "EMBEDDING_VECTOR_SIZE", "0"},
		{"negative vector size", "EMBEDDING_VECTOR_SIZE", "-4"},
		{"non-numeric top k", "TOP_K", "five"},
		{"zero top k", "TOP_K", "0"},
		{"threshold at zero", "FOLLOWUP_SIM_THRESHOLD", "0"},
		{"threshold at one", "FOLLOWUP_SIM_THRESHOLD", "1"},
		{"threshold above one", "FOLLOWUP_SIM_THRESHOLD", "1.5"},
		{"non-numeric threshold", "FOLLOWUP_SIM_THRESHOLD", "half"},
		{"malformed ttl", "CONVERSATION_TTL", "soon"},
		{"non-numeric conversation max", "CONVERSATION_MAX", "lots"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() error = nil, want error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := parseLogLevel(tt.raw)
		if err != nil {
			t.Errorf("parseLogLevel(%q) error = %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}

	if _, err := parseLogLevel("verbose"); err == nil {
		t.Error("parseLogLevel(verbose) error = nil, want error")
	}
}
