package intent

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_client.go -package=mocks rbi-assist/internal/intent ChatClient

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"rbi-assist/internal/contextutil"
	"rbi-assist/internal/llm"
)

// Intent is the classified kind of an inbound question.
type Intent string

const (
	// ChitChat marks small talk that needs no retrieval.
	ChitChat Intent = "chit_chat"
	// RBIQuery marks a regulatory question carrying a topic key.
	RBIQuery Intent = "rbi_query"
)

// Resolution is the outcome of intent classification. Topic is empty for
// ChitChat and always non-empty for RBIQuery.
type Resolution struct {
	Intent Intent
	Topic  string
}

// ChatClient is the slice of the LLM client the resolver needs.
type ChatClient interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// Resolver classifies questions into intents. It never returns an error:
// every failure of the LLM classifier path degrades to the deterministic
// keyword fallback.
type Resolver struct {
	registry *Registry
	llm      ChatClient
	logger   *slog.Logger
}

// NewResolver creates a resolver over the given topic registry and LLM client.
func NewResolver(registry *Registry, client ChatClient) *Resolver {
	return &Resolver{
		registry: registry,
		llm:      client,
		logger:   slog.Default(),
	}
}

const classifierPrompt = `Return ONLY valid JSON:
{"intent":"chit_chat","topic":null} OR {"intent":"rbi_query","topic":"DLG_Cap"}

User message:
`

// Resolve classifies the question in strict priority order: greeting
// shortcut, domain keyword shortcut, then the LLM classifier with keyword
// fallback. No collaborator call happens for the first two branches.
func (r *Resolver) Resolve(ctx context.Context, question string) Resolution {
	logger := contextutil.LoggerFromContext(ctx)

	if r.registry.IsGreeting(question) {
		return Resolution{Intent: ChitChat}
	}

	if r.registry.HasDomainKeyword(question) {
		return Resolution{Intent: RBIQuery, Topic: r.registry.TopicFor(question)}
	}

	outcome := r.classifyWithLLM(ctx, question)
	if outcome.fallbackReason != "" {
		logger.WarnContext(ctx, "intent classifier fell back to keywords", "reason", outcome.fallbackReason)
		return Resolution{Intent: RBIQuery, Topic: r.registry.TopicFor(question)}
	}
	return outcome.resolution
}

// llmOutcome makes the classifier's fallback path an explicit value rather
// than a caught failure: either resolution is usable, or fallbackReason says
// why it is not.
type llmOutcome struct {
	resolution     Resolution
	fallbackReason string
}

func fallback(reason string) llmOutcome {
	return llmOutcome{fallbackReason: reason}
}

func (r *Resolver) classifyWithLLM(ctx context.Context, question string) llmOutcome {
	raw, err := r.llm.ChatWithMessages(ctx, []llm.Message{
		{Role: "user", Content: classifierPrompt + question},
	}, llm.ChatParams{Temperature: 0, MaxTokens: 30})
	if err != nil {
		return fallback("llm call failed: " + err.Error())
	}

	obj, ok := extractJSONObject(raw)
	if !ok {
		return fallback("no JSON object in response")
	}

	var parsed struct {
		Intent string  `json:"intent"`
		Topic  *string `json:"topic"`
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return fallback("malformed JSON: " + err.Error())
	}

	switch Intent(parsed.Intent) {
	case ChitChat:
		return llmOutcome{resolution: Resolution{Intent: ChitChat}}
	case RBIQuery:
		if parsed.Topic == nil || *parsed.Topic == "" {
			return fallback("rbi_query without topic")
		}
		if !r.registry.Known(*parsed.Topic) {
			return fallback("unknown topic " + *parsed.Topic)
		}
		return llmOutcome{resolution: Resolution{Intent: RBIQuery, Topic: *parsed.Topic}}
	default:
		return fallback("unknown intent " + parsed.Intent)
	}
}

// extractJSONObject locates the first '{' through the last '}' in raw,
// tolerating prose around the object.
func extractJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}
