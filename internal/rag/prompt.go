package rag

import (
	"fmt"
	"strings"

	"rbi-assist/internal/graph"
)

// fragmentCharBudget caps the characters of each fragment included in the
// evidence block.
const fragmentCharBudget = 1200

// buildEvidencePrompt formats facts and fragments into one bounded context
// block. Facts are grouped by relation in first-seen order with per-relation
// label deduplication; fragments are truncated and tagged by identifier.
// Output is deterministic for identical inputs, and empty sections are
// omitted entirely rather than filled with placeholders.
func buildEvidencePrompt(question string, fragments []Fragment, facts []graph.Fact) string {
	var b strings.Builder

	b.WriteString("You are an RBI regulatory assistant.\n\n")
	b.WriteString("User question:\n")
	b.WriteString(question)
	b.WriteString("\n")

	if kg := formatFacts(facts); kg != "" {
		b.WriteString("\n================ KG INFO ================\n")
		b.WriteString(kg)
		b.WriteString("\n")
	}

	if excerpts := formatFragments(fragments); excerpts != "" {
		b.WriteString("\n================ DOCUMENT EXCERPTS ================\n")
		b.WriteString(excerpts)
		b.WriteString("\n")
	}

	b.WriteString("\n================ INSTRUCTIONS ================\n")
	b.WriteString("Answer STRICTLY using the above KG + document context.\n")
	b.WriteString("Do NOT hallucinate.\n")
	b.WriteString("If information is missing, respond:\n")
	b.WriteString(`"I cannot find this information in the RBI documents."`)

	return b.String()
}

// formatFacts groups fact labels by relation. Relations keep the order of
// their first appearance; within a relation, duplicate labels collapse to
// the first occurrence and empty labels are dropped.
func formatFacts(facts []graph.Fact) string {
	var relations []string
	grouped := make(map[string][]string)
	seen := make(map[string]map[string]struct{})

	for _, f := range facts {
		if f.Label == "" {
			continue
		}
		if _, ok := grouped[f.Relation]; !ok {
			relations = append(relations, f.Relation)
			grouped[f.Relation] = nil
			seen[f.Relation] = make(map[string]struct{})
		}
		if _, dup := seen[f.Relation][f.Label]; dup {
			continue
		}
		seen[f.Relation][f.Label] = struct{}{}
		grouped[f.Relation] = append(grouped[f.Relation], f.Label)
	}

	lines := make([]string, 0, len(relations))
	for _, rel := range relations {
		lines = append(lines, fmt.Sprintf("%s: %s", rel, strings.Join(grouped[rel], ", ")))
	}
	return strings.Join(lines, "\n")
}

func formatFragments(fragments []Fragment) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		text := f.Text
		if len(text) > fragmentCharBudget {
			text = text[:fragmentCharBudget]
		}
		parts = append(parts, fmt.Sprintf("[%s]: %s", f.ID, text))
	}
	return strings.Join(parts, "\n\n")
}
