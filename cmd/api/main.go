package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"rbi-assist/internal/config"
	"rbi-assist/internal/convstate"
	"rbi-assist/internal/followup"
	"rbi-assist/internal/graph"
	"rbi-assist/internal/http"
	"rbi-assist/internal/intent"
	"rbi-assist/internal/llm"
	"rbi-assist/internal/rag"
	"rbi-assist/internal/search"
	"rbi-assist/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx := context.Background()

	// Initialize fragment database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	fragmentRepo := storage.NewFragmentRepo(db)
	slog.Info("Fragment database initialized", "path", cfg.DBPath)

	// Load the fragment corpus and persist it
	docs, err := search.LoadCorpus(cfg.ChunksDir)
	if err != nil {
		log.Fatalf("Failed to load fragment corpus: %v", err)
	}
	records := make([]storage.FragmentRecord, len(docs))
	for i, doc := range docs {
		records[i] = storage.FragmentRecord{ID: doc.ID, Text: doc.Text, SourceFile: doc.SourceFile}
	}
	if err := fragmentRepo.Upsert(ctx, records); err != nil {
		log.Fatalf("Failed to persist fragment corpus: %v", err)
	}
	slog.Info("Fragment corpus loaded", "dir", cfg.ChunksDir, "fragments", len(docs))

	// Validate embedding client vector size (fail-fast)
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.EmbeddingVectorSize)
	testEmbeddings, err := embedder.EmbedTexts(ctx, []string{"test"})
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.EmbeddingVectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d", cfg.EmbeddingVectorSize)
	}
	slog.Info("Embedding client validated", "vector_size", cfg.EmbeddingVectorSize)

	// Build the in-memory vector index once at startup
	index, err := search.NewIndex(ctx, embedder, docs, cfg.TopK)
	if err != nil {
		log.Fatalf("Failed to build vector index: %v", err)
	}
	slog.Info("Vector index built", "fragments", index.Size())

	// Connect the knowledge graph store. An unreachable graph degrades to
	// zero graph evidence at request time, so startup only warns.
	graphStore, err := graph.NewStore(cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
	if err != nil {
		log.Fatalf("Failed to create graph store: %v", err)
	}
	defer func() {
		_ = graphStore.Close(ctx)
	}()
	if err := graphStore.Ping(ctx); err != nil {
		slog.Warn("Graph store unreachable at startup, continuing degraded", "error", err)
	} else {
		slog.Info("Graph store connected", "uri", cfg.Neo4jURI)
	}

	// LLM client and pipeline components
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)
	resolver := intent.NewResolver(intent.DefaultRegistry(), llmClient)
	followupResolver := followup.NewResolver(llmClient, embedder, cfg.FollowupThreshold)
	conversations := convstate.New(cfg.ConversationTTL, cfg.ConversationMax)

	engine := rag.NewEngine(
		graphStore,
		index,
		fragmentRepo,
		resolver,
		followupResolver,
		conversations,
		llmClient,
		cfg.TopK,
	)
	slog.Info("Answer engine initialized", "top_k", cfg.TopK, "followup_threshold", cfg.FollowupThreshold)

	router := http.NewRouter(&http.Deps{
		Engine:     engine,
		Graph:      graphStore,
		ModelName:  cfg.LLMModelName,
		CorpusSize: index.Size(),
	})

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
