package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"rbi-assist/internal/contextutil"
)

// embedBatchSize bounds one embeddings request while building the index.
const embedBatchSize = 64

// Result is one ranked hit from a similarity search.
type Result struct {
	ID    string
	Text  string
	Score float64
}

// Embedder is the slice of the embeddings client the index needs.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Index holds the embedded corpus in memory for the process lifetime.
// Documents added after startup are invisible until a rebuild.
type Index struct {
	docs     []Document
	vectors  [][]float32
	norms    []float64
	embedder Embedder
	defaultK int
	logger   *slog.Logger
}

// NewIndex embeds the whole corpus once and returns a searchable index.
// defaultK is the result count used when a search passes k <= 0.
func NewIndex(ctx context.Context, embedder Embedder, docs []Document, defaultK int) (*Index, error) {
	if defaultK <= 0 {
		defaultK = 5
	}

	ix := &Index{
		docs:     docs,
		vectors:  make([][]float32, 0, len(docs)),
		norms:    make([]float64, 0, len(docs)),
		embedder: embedder,
		defaultK: defaultK,
		logger:   slog.Default(),
	}

	for start := 0; start < len(docs); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(docs) {
			end = len(docs)
		}

		texts := make([]string, 0, end-start)
		for _, doc := range docs[start:end] {
			texts = append(texts, doc.Text)
		}

		vectors, err := embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("failed to embed corpus batch %d-%d: %w", start, end, err)
		}
		for _, vec := range vectors {
			ix.vectors = append(ix.vectors, vec)
			ix.norms = append(ix.norms, norm(vec))
		}
	}

	return ix, nil
}

// Size returns the number of indexed documents.
func (ix *Index) Size() int {
	return len(ix.docs)
}

// Search embeds the query and returns up to k documents ranked by descending
// cosine similarity. Equal scores keep their corpus order.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if k <= 0 {
		k = ix.defaultK
	}
	if len(ix.docs) == 0 {
		return nil, nil
	}

	vectors, err := ix.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	queryVec := vectors[0]
	queryNorm := norm(queryVec)

	scores := make([]float64, len(ix.docs))
	for i, vec := range ix.vectors {
		scores[i] = cosineWithNorms(queryVec, queryNorm, vec, ix.norms[i])
	}

	order := make([]int, len(ix.docs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}

	results := make([]Result, 0, k)
	for _, idx := range order[:k] {
		results = append(results, Result{
			ID:    ix.docs[idx].ID,
			Text:  ix.docs[idx].Text,
			Score: scores[idx],
		})
	}

	logger.DebugContext(ctx, "vector search completed", "k", k, "corpus_size", len(ix.docs))
	return results, nil
}

// Cosine returns the cosine similarity of two vectors, 0 when either is
// zero-length or all zeros.
func Cosine(a, b []float32) float64 {
	return cosineWithNorms(a, norm(a), b, norm(b))
}

func cosineWithNorms(a []float32, normA float64, b []float32, normB float64) float64 {
	if len(a) != len(b) || normA == 0 || normB == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (normA * normB)
}

func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}
