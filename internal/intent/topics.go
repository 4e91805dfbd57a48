package intent

import "strings"

// Topic is immutable reference data: a canonical regulatory subject key and
// the keywords that map free text onto it.
type Topic struct {
	Key      string
	Keywords []string
}

// Registry holds the configured topics, the domain keyword list and the
// greeting tokens. Topics are kept in a slice so keyword scanning happens in
// a fixed enumeration order; the first topic whose keyword set matches wins.
type Registry struct {
	topics         []Topic
	defaultKey     string
	domainKeywords []string
	greetings      []string
}

// NewRegistry creates a registry from explicit reference data. The default
// key is used when no topic keyword matches a regulatory question.
func NewRegistry(topics []Topic, defaultKey string, domainKeywords, greetings []string) *Registry {
	return &Registry{
		topics:         topics,
		defaultKey:     defaultKey,
		domainKeywords: domainKeywords,
		greetings:      greetings,
	}
}

// DefaultRegistry returns the registry for the RBI regulatory corpus.
func DefaultRegistry() *Registry {
	return NewRegistry(
		[]Topic{
			{Key: "DLG_Cap", Keywords: []string{"dlg", "fldg", "first loss"}},
			{Key: "Gold_Loan_LTV", Keywords: []string{"gold", "ltv"}},
			{Key: "ECL_Overview", Keywords: []string{"ecl", "expected credit"}},
			{Key: "KYC_Process", Keywords: []string{"kyc"}},
			{Key: "AML_Compliance", Keywords: []string{"aml"}},
			{Key: "Model_Governance_Framework", Keywords: []string{"model governance"}},
		},
		"DLG_Cap",
		[]string{"rbi", "loan", "dlg", "fldg", "cap", "ltv", "kyc", "ecl", "aml"},
		[]string{"hi", "hello", "hey", "hii"},
	)
}

// DefaultKey returns the fallback topic key.
func (r *Registry) DefaultKey() string {
	return r.defaultKey
}

// Known reports whether key is a configured topic key.
func (r *Registry) Known(key string) bool {
	for _, t := range r.topics {
		if t.Key == key {
			return true
		}
	}
	return false
}

// IsGreeting reports whether the question is a greeting: an exact greeting
// token, or a greeting token followed by more text.
func (r *Registry) IsGreeting(question string) bool {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, g := range r.greetings {
		if q == g || strings.HasPrefix(q, g+" ") {
			return true
		}
	}
	return false
}

// HasDomainKeyword reports whether the question contains any domain keyword
// (case-insensitive substring match).
func (r *Registry) HasDomainKeyword(question string) bool {
	q := strings.ToLower(question)
	for _, k := range r.domainKeywords {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}

// TopicFor maps a question to a topic key by scanning the topic table in
// enumeration order; the first topic with a matching keyword wins. Falls back
// to the default key when nothing matches.
func (r *Registry) TopicFor(question string) string {
	q := strings.ToLower(question)
	for _, t := range r.topics {
		for _, k := range t.Keywords {
			if strings.Contains(q, k) {
				return t.Key
			}
		}
	}
	return r.defaultKey
}
