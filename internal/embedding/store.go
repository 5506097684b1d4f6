package embedding

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Store memoizes embeddings produced by a Source.
//
// The cache key is the concept string ALONE: re-requesting a cached concept
// with a different domain returns the embedding generated for the first
// domain seen. This mirrors the reference engine's cache semantics and is
// pinned by tests; callers that need per-domain vectors must use distinct
// concept strings.
//
// The store has no eviction policy. It is safe for concurrent use: lookups
// take a read lock and concurrent misses for the same concept are collapsed
// into a single Source call.
type Store struct {
	mu     sync.RWMutex
	group  singleflight.Group
	source Source
	cache  map[string]Embedding
	order  []string
}

// NewStore creates a Store backed by the given source.
func NewStore(source Source) *Store {
	return &Store{
		source: source,
		cache:  make(map[string]Embedding),
	}
}

// Create returns the embedding for a concept, generating and caching it on
// first request. The domain is recorded on the embedding but ignored on
// cache hits.
func (s *Store) Create(concept, domain string) Embedding {
	s.mu.RLock()
	e, ok := s.cache[concept]
	s.mu.RUnlock()
	if ok {
		return e
	}

	v, _, _ := s.group.Do(concept, func() (any, error) {
		// Re-check under the write path: a racing caller may have won the
		// singleflight slot between our RUnlock and Do.
		s.mu.Lock()
		if cached, hit := s.cache[concept]; hit {
			s.mu.Unlock()
			return cached, nil
		}
		s.mu.Unlock()

		vec := s.source.Embed(concept, domain)
		e := Embedding{
			Vector:    vec,
			Dimension: len(vec),
			Concept:   concept,
			Domain:    domain,
		}

		s.mu.Lock()
		s.cache[concept] = e
		s.order = append(s.order, concept)
		s.mu.Unlock()
		return e, nil
	})
	return v.(Embedding)
}

// Get returns the cached embedding for a concept, if present.
func (s *Store) Get(concept string) (Embedding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.cache[concept]
	return e, ok
}

// Snapshot returns the cached embeddings in insertion order.
func (s *Store) Snapshot() []Embedding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Embedding, 0, len(s.order))
	for _, concept := range s.order {
		out = append(out, s.cache[concept])
	}
	return out
}

// Len returns the number of cached embeddings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

// Source returns the store's embedding source.
func (s *Store) Source() Source {
	return s.source
}
