package followup

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_clients.go -package=mocks rbi-assist/internal/followup ChatClient,Embedder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"rbi-assist/internal/contextutil"
	"rbi-assist/internal/llm"
	"rbi-assist/internal/search"
)

// Questions longer than this many whitespace-separated tokens are never
// treated as follow-ups on similarity alone; they are assumed to be
// self-contained.
const shortQuestionTokenLimit = 4

var followupPhrases = []string{
	"explain again",
	"repeat",
	"again",
	"clarify",
	"more clearly",
	"elaborate",
	"explain that",
}

// ChatClient is the slice of the LLM client used for rewriting.
type ChatClient interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// Embedder computes embeddings for similarity scoring.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Resolver decides whether a question continues the previous answer and
// rewrites it into a self-contained question when it does.
type Resolver struct {
	llm       ChatClient
	embedder  Embedder
	threshold float64
	logger    *slog.Logger
}

// NewResolver creates a follow-up resolver. threshold is the cosine
// similarity above which a short question counts as a follow-up.
func NewResolver(client ChatClient, embedder Embedder, threshold float64) *Resolver {
	return &Resolver{
		llm:       client,
		embedder:  embedder,
		threshold: threshold,
		logger:    slog.Default(),
	}
}

// IsFollowup reports whether the question continues the previous answer.
// Without a previous answer it is never a follow-up. A phrase match decides
// immediately; otherwise only questions of at most four tokens are scored by
// embedding similarity against the previous answer. An embedding failure
// degrades to "not a follow-up".
func (r *Resolver) IsFollowup(ctx context.Context, previousAnswer, question string) bool {
	logger := contextutil.LoggerFromContext(ctx)

	if previousAnswer == "" {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(question))
	for _, phrase := range followupPhrases {
		if strings.Contains(q, phrase) {
			return true
		}
	}

	if len(strings.Fields(question)) > shortQuestionTokenLimit {
		return false
	}

	vectors, err := r.embedder.EmbedTexts(ctx, []string{previousAnswer, question})
	if err != nil {
		logger.WarnContext(ctx, "follow-up similarity unavailable", "error", err)
		return false
	}
	sim := search.Cosine(vectors[0], vectors[1])
	logger.DebugContext(ctx, "follow-up similarity", "similarity", sim, "threshold", r.threshold)
	return sim > r.threshold
}

// Rewrite asks the LLM to rewrite the follow-up into a complete question and
// returns the trimmed response verbatim; its form is not validated. On a
// transport failure the original question is returned unchanged.
func (r *Resolver) Rewrite(ctx context.Context, previousAnswer, question string) string {
	logger := contextutil.LoggerFromContext(ctx)

	prompt := fmt.Sprintf(`Rewrite this follow-up into a complete RBI regulatory question.

PREVIOUS ANSWER:
%s

FOLLOW-UP:
%s

Return ONLY the rewritten question.`, previousAnswer, question)

	rewritten, err := r.llm.ChatWithMessages(ctx, []llm.Message{
		{Role: "user", Content: prompt},
	}, llm.ChatParams{Temperature: 0, MaxTokens: 80})
	if err != nil {
		logger.WarnContext(ctx, "follow-up rewrite unavailable, keeping original question", "error", err)
		return question
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		return question
	}
	return rewritten
}
