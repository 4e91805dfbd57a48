package graph

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"rbi-assist/internal/contextutil"
)

// ErrUnavailable marks failures reaching the graph collaborator. Callers
// treat it as "zero graph evidence" rather than aborting the request.
var ErrUnavailable = errors.New("graph store unavailable")

const (
	topicNodePrefix  = "Topic::"
	chunkNodePrefix  = "Chunk::"
	clauseNodePrefix = "Clause::"
)

// Store is a Neo4j-backed knowledge graph reader.
type Store struct {
	driver neo4j.DriverWithContext
}

// NewStore creates a graph store connected to the given Neo4j endpoint.
func NewStore(uri, user, password string) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}
	return &Store{driver: driver}, nil
}

// Ping verifies connectivity to the graph store.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Close releases the underlying driver.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Topic nodes exist in two generations: newer ones carry the canonical key
// as their node id, older ones embed it inside a meta JSON string. One lookup
// operation tries both strategies in order and stops at the first hit.
var topicLookups = []struct {
	name   string
	query  string
	params func(topicKey string) map[string]any
}{
	{
		name: "by_id",
		query: `MATCH (t:Topic {id: $tid})
			OPTIONAL MATCH (c:Chunk)-[:pertainsTo]->(t)
			OPTIONAL MATCH (cl:Clause)-[:pertainsTo]->(t)
			RETURN collect(DISTINCT c.id) + collect(DISTINCT cl.id) AS nodes`,
		params: func(topicKey string) map[string]any {
			return map[string]any{"tid": topicNodePrefix + topicKey}
		},
	},
	{
		name: "by_meta",
		query: `MATCH (t:Topic)
			WHERE t.meta CONTAINS $needle
			OPTIONAL MATCH (c:Chunk)-[:pertainsTo]->(t)
			OPTIONAL MATCH (cl:Clause)-[:pertainsTo]->(t)
			RETURN collect(DISTINCT c.id) + collect(DISTINCT cl.id) AS nodes`,
		params: func(topicKey string) map[string]any {
			return map[string]any{"needle": fmt.Sprintf("%q: %q", "canonical", topicKey)}
		},
	},
}

// RelatedFragments returns the identifiers of every chunk and clause
// connected to the topic through the pertainsTo relation. Identifiers are
// returned with their kind prefix stripped so downstream consumers see a
// single namespace.
func (s *Store) RelatedFragments(ctx context.Context, topicKey string) ([]string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer func() {
		_ = session.Close(ctx)
	}()

	for _, lookup := range topicLookups {
		ids, err := relatedFragmentsQuery(ctx, session, lookup.query, lookup.params(topicKey))
		if err != nil {
			return nil, fmt.Errorf("%w: topic lookup %s: %v", ErrUnavailable, lookup.name, err)
		}
		if len(ids) > 0 {
			logger.DebugContext(ctx, "topic resolved in graph", "topic", topicKey, "strategy", lookup.name, "fragments", len(ids))
			return ids, nil
		}
	}

	return nil, nil
}

func relatedFragmentsQuery(ctx context.Context, session neo4j.SessionWithContext, query string, params map[string]any) ([]string, error) {
	raw, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		record, err := result.Single(ctx)
		if err != nil {
			return nil, err
		}
		nodes, _ := record.Get("nodes")
		return nodes, nil
	})
	if err != nil {
		return nil, err
	}

	values, ok := raw.([]any)
	if !ok {
		return nil, nil
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		id, ok := v.(string)
		if !ok || id == "" {
			continue
		}
		ids = append(ids, stripKindPrefix(id))
	}
	return ids, nil
}

// FactsFor returns every outgoing relation triple from each fragment's node.
// An empty input yields an empty result without a round-trip.
func (s *Store) FactsFor(ctx context.Context, fragmentIDs []string) ([]Fact, error) {
	if len(fragmentIDs) == 0 {
		return nil, nil
	}

	nodeIDs := make([]string, len(fragmentIDs))
	for i, id := range fragmentIDs {
		nodeIDs[i] = chunkNodePrefix + id
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer func() {
		_ = session.Close(ctx)
	}()

	query := `UNWIND $ids AS nid
		MATCH (n {id: nid})-[r]->(x)
		RETURN nid AS source, type(r) AS relation, x.id AS target, coalesce(x.label, "") AS label`

	raw, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{"ids": nodeIDs})
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: fact expansion: %v", ErrUnavailable, err)
	}

	records, ok := raw.([]*neo4j.Record)
	if !ok {
		return nil, nil
	}

	facts := make([]Fact, 0, len(records))
	for _, record := range records {
		facts = append(facts, Fact{
			Source:   stringValue(record, "source"),
			Relation: stringValue(record, "relation"),
			Target:   stringValue(record, "target"),
			Label:    stringValue(record, "label"),
		})
	}
	return facts, nil
}

func stringValue(record *neo4j.Record, key string) string {
	raw, ok := record.Get(key)
	if !ok {
		return ""
	}
	s, _ := raw.(string)
	return s
}

func stripKindPrefix(id string) string {
	if trimmed, ok := strings.CutPrefix(id, chunkNodePrefix); ok {
		return trimmed
	}
	if trimmed, ok := strings.CutPrefix(id, clauseNodePrefix); ok {
		return trimmed
	}
	return id
}
