// Package convstate keeps the most recent answer per conversation in a
// bounded in-memory store. Entries expire after a TTL and the store evicts
// its oldest entry when a cap is reached, so memory stays bounded for a
// single-process deployment. Nothing is persisted across restarts.
package convstate

import (
	"sync"
	"time"
)

type entry struct {
	answer  string
	touched time.Time
}

// Store maps conversation identifiers to their last produced answer.
// Concurrent writes to the same identifier race with last-write-wins
// semantics; distinct identifiers only contend on a short critical section.
type Store struct {
	mu         sync.Mutex
	entries    map[string]*entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// New creates a store whose entries expire after ttl and whose size never
// exceeds maxEntries. Non-positive values disable the respective bound.
func New(ttl time.Duration, maxEntries int) *Store {
	return &Store{
		entries:    make(map[string]*entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns the last answer for id, or "" when none is stored or the
// entry has expired.
func (s *Store) Get(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return ""
	}
	if s.ttl > 0 && s.now().Sub(e.touched) > s.ttl {
		delete(s.entries, id)
		return ""
	}
	return e.answer
}

// Set stores answer as the last answer for id, overwriting any previous
// value, then enforces the TTL and size bounds.
func (s *Store) Set(id, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.entries[id] = &entry{answer: answer, touched: now}

	if s.ttl > 0 {
		for key, e := range s.entries {
			if now.Sub(e.touched) > s.ttl {
				delete(s.entries, key)
			}
		}
	}

	if s.maxEntries > 0 {
		for len(s.entries) > s.maxEntries {
			var oldestKey string
			var oldest time.Time
			first := true
			for key, e := range s.entries {
				if key == id {
					continue
				}
				if first || e.touched.Before(oldest) {
					oldestKey, oldest = key, e.touched
					first = false
				}
			}
			if first {
				break
			}
			delete(s.entries, oldestKey)
		}
	}
}

// Clear removes the entry for id. Asking a new question afterwards behaves
// exactly like a brand-new conversation identifier.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len returns the current number of stored conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
