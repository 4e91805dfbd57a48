package intent_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"rbi-assist/internal/intent"
	"rbi-assist/internal/intent/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestResolve_GreetingSkipsLLM(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT: any LLM call fails the test.
	mockLLM := mocks.NewMockChatClient(ctrl)
	resolver := intent.NewResolver(intent.DefaultRegistry(), mockLLM)

	tests := []string{"hi", "Hello", "hey", "hii", "hi there", "hello everyone"}
	for _, q := range tests {
		t.Run(q, func(t *testing.T) {
			res := resolver.Resolve(context.Background(), q)
			if res.Intent != intent.ChitChat {
				t.Errorf("Resolve(%q) intent = %v, want chit_chat", q, res.Intent)
			}
			if res.Topic != "" {
				t.Errorf("Resolve(%q) topic = %q, want empty", q, res.Topic)
			}
		})
	}
}

func TestResolve_DomainKeywordSkipsLLM(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLLM := mocks.NewMockChatClient(ctrl)
	resolver := intent.NewResolver(intent.DefaultRegistry(), mockLLM)

	tests := []struct {
		question  string
		wantTopic string
	}{
		{"What is the DLG cap for lenders?", "DLG_Cap"},
		{"What is the gold loan LTV limit?", "Gold_Loan_LTV"},
		{"Explain the ECL provisioning norms", "ECL_Overview"},
		{"How does KYC verification work?", "KYC_Process"},
		{"What do the RBI directions say about outsourcing?", "DLG_Cap"}, // keyword hit, no topic keyword -> default
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			res := resolver.Resolve(context.Background(), tt.question)
			if res.Intent != intent.RBIQuery {
				t.Fatalf("Resolve() intent = %v, want rbi_query", res.Intent)
			}
			if res.Topic != tt.wantTopic {
				t.Errorf("Resolve() topic = %q, want %q", res.Topic, tt.wantTopic)
			}
		})
	}
}

func TestResolve_KeywordTopicIgnoresLLMAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The LLM is never consulted for keyword questions, so an unavailable
	// model cannot change the outcome.
	mockLLM := mocks.NewMockChatClient(ctrl)
	resolver := intent.NewResolver(intent.DefaultRegistry(), mockLLM)

	res := resolver.Resolve(context.Background(), "what is the permitted ltv for a gold loan")
	if res.Intent != intent.RBIQuery || res.Topic != "Gold_Loan_LTV" {
		t.Errorf("Resolve() = %+v, want rbi_query/Gold_Loan_LTV", res)
	}
}

func TestResolve_LLMClassifier(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		responseErr error
		wantIntent intent.Intent
		wantTopic  string
	}{
		{
			name:       "valid rbi_query JSON",
			response:   `{"intent":"rbi_query","topic":"KYC_Process"}`,
			wantIntent: intent.RBIQuery,
			wantTopic:  "KYC_Process",
		},
		{
			name:       "valid chit_chat JSON",
			response:   `{"intent":"chit_chat","topic":null}`,
			wantIntent: intent.ChitChat,
			wantTopic:  "",
		},
		{
			name:       "JSON wrapped in prose",
			response:   "Sure! Here you go: {\"intent\":\"rbi_query\",\"topic\":\"AML_Compliance\"} Hope that helps.",
			wantIntent: intent.RBIQuery,
			wantTopic:  "AML_Compliance",
		},
		{
			name:       "non-JSON garbage falls back",
			response:   "I am not able to classify this",
			wantIntent: intent.RBIQuery,
			wantTopic:  "DLG_Cap",
		},
		{
			name:       "malformed JSON falls back",
			response:   `{"intent": rbi_query}`,
			wantIntent: intent.RBIQuery,
			wantTopic:  "DLG_Cap",
		},
		{
			name:       "empty response falls back",
			response:   "",
			wantIntent: intent.RBIQuery,
			wantTopic:  "DLG_Cap",
		},
		{
			name:       "rbi_query without topic falls back",
			response:   `{"intent":"rbi_query","topic":null}`,
			wantIntent: intent.RBIQuery,
			wantTopic:  "DLG_Cap",
		},
		{
			name:       "unknown topic falls back",
			response:   `{"intent":"rbi_query","topic":"Crypto_Assets"}`,
			wantIntent: intent.RBIQuery,
			wantTopic:  "DLG_Cap",
		},
		{
			name:        "transport failure falls back",
			responseErr: errors.New("connection refused"),
			wantIntent:  intent.RBIQuery,
			wantTopic:   "DLG_Cap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLLM := mocks.NewMockChatClient(ctrl)
			mockLLM.EXPECT().
				ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.response, tt.responseErr)

			resolver := intent.NewResolver(intent.DefaultRegistry(), mockLLM)

			// No greeting, no domain keyword: must hit the LLM path.
			res := resolver.Resolve(context.Background(), "tell me about the weather in regulation land")

			if res.Intent != tt.wantIntent {
				t.Errorf("Resolve() intent = %v, want %v", res.Intent, tt.wantIntent)
			}
			if res.Topic != tt.wantTopic {
				t.Errorf("Resolve() topic = %q, want %q", res.Topic, tt.wantTopic)
			}
			if res.Intent == intent.RBIQuery && res.Topic == "" {
				t.Error("Resolve() returned rbi_query with empty topic")
			}
		})
	}
}

func TestRegistry_TopicFor(t *testing.T) {
	reg := intent.DefaultRegistry()

	tests := []struct {
		question string
		want     string
	}{
		{"what about fldg arrangements", "DLG_Cap"},
		{"first loss default guarantee rules", "DLG_Cap"},
		{"gold ornaments pledged for a loan", "Gold_Loan_LTV"},
		{"expected credit loss transition", "ECL_Overview"},
		{"model governance expectations", "Model_Governance_Framework"},
		{"completely unrelated text", "DLG_Cap"}, // default
	}

	for _, tt := range tests {
		if got := reg.TopicFor(tt.question); got != tt.want {
			t.Errorf("TopicFor(%q) = %q, want %q", tt.question, got, tt.want)
		}
	}
}

func TestRegistry_ScanOrderIsFixed(t *testing.T) {
	reg := intent.DefaultRegistry()

	// "gold loan dlg" matches both DLG_Cap and Gold_Loan_LTV keywords;
	// DLG_Cap is enumerated first and must win every time.
	for i := 0; i < 20; i++ {
		if got := reg.TopicFor("gold loan dlg cap"); got != "DLG_Cap" {
			t.Fatalf("TopicFor() = %q, want DLG_Cap (fixed enumeration order)", got)
		}
	}
}
