package rag

import "rbi-assist/internal/graph"

// AskRequest represents one inbound question.
type AskRequest struct {
	// Question is the user's question.
	Question string `json:"question"`
	// ConversationID is an opaque token scoping follow-up detection. When
	// empty, a new identifier is minted and returned in the response.
	ConversationID string `json:"conversation_id,omitempty"`
	// Clear discards any stored state for the conversation before answering.
	Clear bool `json:"clear,omitempty"`
}

// ChunkUsed identifies a fragment that backed the answer, with a short
// preview of its text.
type ChunkUsed struct {
	ID      string `json:"id"`
	Preview string `json:"preview"`
}

// AskResponse is the answer together with the evidence that produced it.
type AskResponse struct {
	ConversationID string       `json:"conversation_id"`
	Answer         string       `json:"answer"`
	ChunksUsed     []ChunkUsed  `json:"chunks_used"`
	Facts          []graph.Fact `json:"kg_facts"`
}

// Fragment is a candidate unit of evidence: an identifier and its text.
// Text may be empty when the identifier resolves to no stored fragment.
type Fragment struct {
	ID   string
	Text string
}
