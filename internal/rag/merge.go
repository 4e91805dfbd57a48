package rag

import (
	"context"
	"errors"
	"sort"

	"golang.org/x/sync/errgroup"

	"rbi-assist/internal/contextutil"
	"rbi-assist/internal/graph"
)

// merge unions graph-derived fragments and vector-search fragments into one
// deduplicated candidate set and fetches the facts for the union. Either
// source failing degrades to zero evidence from that source; an empty result
// from both is valid and means "no evidence found".
func (e *engine) merge(ctx context.Context, query, topicKey string) ([]Fragment, []graph.Fact) {
	logger := contextutil.LoggerFromContext(ctx)

	var graphIDs []string
	var vectorIDs []string
	vectorText := make(map[string]string)

	// The two lookups share no mutable state, so they run concurrently.
	// Neither returns an error: a failed source contributes zero evidence.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ids, err := e.graph.RelatedFragments(gctx, topicKey)
		if err != nil {
			if errors.Is(err, graph.ErrUnavailable) {
				logger.WarnContext(gctx, "graph store unavailable, continuing without graph evidence", "error", err)
			} else {
				logger.ErrorContext(gctx, "graph lookup failed, continuing without graph evidence", "error", err)
			}
			return nil
		}
		graphIDs = ids
		return nil
	})
	g.Go(func() error {
		results, err := e.searcher.Search(gctx, query, e.topK)
		if err != nil {
			logger.WarnContext(gctx, "vector search unavailable, continuing without vector evidence", "error", err)
			return nil
		}
		for _, res := range results {
			vectorIDs = append(vectorIDs, res.ID)
			vectorText[res.ID] = res.Text
		}
		return nil
	})
	_ = g.Wait()

	union := make(map[string]struct{}, len(graphIDs)+len(vectorIDs))
	for _, id := range graphIDs {
		union[id] = struct{}{}
	}
	for _, id := range vectorIDs {
		union[id] = struct{}{}
	}

	// The candidate set is semantically unordered; sorting just makes the
	// assembled evidence reproducible for identical inputs.
	ids := make([]string, 0, len(union))
	for id := range union {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fragments := make([]Fragment, 0, len(ids))
	for _, id := range ids {
		text, ok := vectorText[id]
		if !ok {
			stored, err := e.fragments.TextByID(ctx, id)
			if err != nil {
				logger.WarnContext(ctx, "fragment text lookup failed", "fragment_id", id, "error", err)
			}
			text = stored
		}
		fragments = append(fragments, Fragment{ID: id, Text: text})
	}

	var facts []graph.Fact
	if len(ids) > 0 {
		fetched, err := e.graph.FactsFor(ctx, ids)
		if err != nil {
			logger.WarnContext(ctx, "fact expansion unavailable, continuing without facts", "error", err)
		} else {
			facts = fetched
		}
	}

	logger.InfoContext(ctx, "hybrid retrieval merged",
		"graph_fragments", len(graphIDs),
		"vector_fragments", len(vectorIDs),
		"candidates", len(fragments),
		"facts", len(facts),
	)
	return fragments, facts
}
