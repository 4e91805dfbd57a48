package graph

// Fact is a directed, typed relation triple from the knowledge graph. Label
// carries the display label of the target node and may be empty when the
// target has none.
type Fact struct {
	Source   string `json:"source"`
	Relation string `json:"relation"`
	Target   string `json:"target"`
	Label    string `json:"label"`
}
