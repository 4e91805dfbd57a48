package rag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_rag.go -package=mocks rbi-assist/internal/rag Engine,TopicGraph,Searcher,IntentResolver,FollowupResolver,ConversationStore,LLMClient

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"rbi-assist/internal/contextutil"
	"rbi-assist/internal/graph"
	"rbi-assist/internal/intent"
	"rbi-assist/internal/llm"
	"rbi-assist/internal/search"
	"rbi-assist/internal/storage"
)

// NoEvidenceAnswer is the fixed answer produced when neither the graph nor
// the vector search yields any evidence.
const NoEvidenceAnswer = "I cannot find this information in the provided RBI documents."

const chunkPreviewChars = 400

// Engine answers regulatory questions with hybrid graph + vector evidence.
type Engine interface {
	// Ask answers one question within a conversation.
	Ask(ctx context.Context, req AskRequest) (AskResponse, error)
}

// TopicGraph expands topics into fragment identifiers and fragments into
// relation triples.
type TopicGraph interface {
	RelatedFragments(ctx context.Context, topicKey string) ([]string, error)
	FactsFor(ctx context.Context, fragmentIDs []string) ([]graph.Fact, error)
}

// Searcher ranks corpus fragments by similarity to a query.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]search.Result, error)
}

// IntentResolver classifies questions; it never fails.
type IntentResolver interface {
	Resolve(ctx context.Context, question string) intent.Resolution
}

// FollowupResolver detects and rewrites follow-up questions.
type FollowupResolver interface {
	IsFollowup(ctx context.Context, previousAnswer, question string) bool
	Rewrite(ctx context.Context, previousAnswer, question string) string
}

// ConversationStore holds the last answer per conversation identifier.
type ConversationStore interface {
	Get(id string) string
	Set(id, answer string)
	Clear(id string)
}

// LLMClient is the slice of the LLM client the engine needs.
type LLMClient interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// engine implements Engine.
type engine struct {
	graph         TopicGraph
	searcher      Searcher
	fragments     storage.FragmentStore
	intent        IntentResolver
	followup      FollowupResolver
	conversations ConversationStore
	llm           LLMClient
	topK          int
	logger        *slog.Logger
}

// NewEngine creates the answer engine over its collaborators. topK bounds
// the vector-search results merged into the candidate set.
func NewEngine(
	topicGraph TopicGraph,
	searcher Searcher,
	fragments storage.FragmentStore,
	intentResolver IntentResolver,
	followupResolver FollowupResolver,
	conversations ConversationStore,
	llmClient LLMClient,
	topK int,
) Engine {
	return &engine{
		graph:         topicGraph,
		searcher:      searcher,
		fragments:     fragments,
		intent:        intentResolver,
		followup:      followupResolver,
		conversations: conversations,
		llm:           llmClient,
		topK:          topK,
		logger:        slog.Default(),
	}
}

// Ask runs the full pipeline: intent resolution, follow-up rewriting, hybrid
// retrieval, evidence prompting and answer generation. Only input validation
// and a failure of the final generation call surface as errors; every other
// collaborator failure degrades locally.
func (e *engine) Ask(ctx context.Context, req AskRequest) (AskResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return AskResponse{}, &ValidationError{Field: "question", Message: "cannot be empty"}
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}
	if req.Clear {
		e.conversations.Clear(conversationID)
	}

	previous := e.conversations.Get(conversationID)

	resolution := e.intent.Resolve(ctx, question)
	logger.InfoContext(ctx, "intent resolved", "intent", resolution.Intent, "topic", resolution.Topic)

	if resolution.Intent == intent.ChitChat {
		return e.answerChitChat(ctx, conversationID, question)
	}

	if previous != "" && e.followup.IsFollowup(ctx, previous, question) {
		rewritten := e.followup.Rewrite(ctx, previous, question)
		logger.InfoContext(ctx, "follow-up rewritten", "original", question, "rewritten", rewritten)
		question = rewritten
	}

	fragments, facts := e.merge(ctx, question, resolution.Topic)

	if len(fragments) == 0 && len(facts) == 0 {
		logger.InfoContext(ctx, "no evidence found", "topic", resolution.Topic)
		e.conversations.Set(conversationID, NoEvidenceAnswer)
		return AskResponse{
			ConversationID: conversationID,
			Answer:         NoEvidenceAnswer,
			ChunksUsed:     []ChunkUsed{},
			Facts:          []graph.Fact{},
		}, nil
	}

	answer, err := e.generate(ctx, question, previous, fragments, facts)
	if err != nil {
		logger.ErrorContext(ctx, "answer generation failed", "error", err)
		return AskResponse{}, WrapError(fmt.Errorf("%w: %v", ErrExternalService, err), "failed to generate answer")
	}

	e.conversations.Set(conversationID, answer)

	used := make([]ChunkUsed, 0, len(fragments))
	for _, f := range fragments {
		preview := f.Text
		if len(preview) > chunkPreviewChars {
			preview = preview[:chunkPreviewChars]
		}
		used = append(used, ChunkUsed{ID: f.ID, Preview: preview})
	}
	if facts == nil {
		facts = []graph.Fact{}
	}

	logger.InfoContext(ctx, "question answered", "chunks_used", len(used), "facts", len(facts), "answer_length", len(answer))
	return AskResponse{
		ConversationID: conversationID,
		Answer:         answer,
		ChunksUsed:     used,
		Facts:          facts,
	}, nil
}

func (e *engine) answerChitChat(ctx context.Context, conversationID, question string) (AskResponse, error) {
	reply, err := e.llm.ChatWithMessages(ctx, []llm.Message{
		{Role: "user", Content: "You are friendly. Reply briefly to: " + question},
	}, llm.ChatParams{Temperature: 0.7})
	if err != nil {
		return AskResponse{}, WrapError(fmt.Errorf("%w: %v", ErrExternalService, err), "failed to generate reply")
	}
	reply = strings.TrimSpace(reply)

	e.conversations.Set(conversationID, reply)
	return AskResponse{
		ConversationID: conversationID,
		Answer:         reply,
		ChunksUsed:     []ChunkUsed{},
		Facts:          []graph.Fact{},
	}, nil
}

func (e *engine) generate(ctx context.Context, question, previous string, fragments []Fragment, facts []graph.Fact) (string, error) {
	if previous == "" {
		previous = "(none)"
	}

	systemPrompt := "You are an RBI regulatory assistant. " +
		"Use ONLY the provided context. If the information is missing, say so."

	userMessage := fmt.Sprintf("PREVIOUS ANSWER:\n%s\n\n%s\n\nTASK:\nAnswer precisely.",
		previous, buildEvidencePrompt(question, fragments, facts))

	answer, err := e.llm.ChatWithMessages(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userMessage},
	}, llm.ChatParams{Temperature: 0, MaxTokens: 600})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
