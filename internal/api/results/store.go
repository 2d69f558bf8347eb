// Package results keeps recently computed comparisons in memory so a
// charting front end can re-fetch them by ID without re-posting the inputs.
// Entries are request-scoped artifacts with a short TTL; this is not a
// persistence layer.
package results

import (
	"sync"
	"time"

	"heatcompare/internal/api/models"

	"github.com/google/uuid"
)

const (
	// DefaultTTL is how long a stored comparison stays retrievable.
	DefaultTTL = time.Hour

	cleanupInterval = 5 * time.Minute
)

type entry struct {
	response  models.CompareResponse
	expiresAt time.Time
}

// Store is a TTL-bounded in-memory comparison store keyed by UUID.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates a store and starts its cleanup loop. A non-positive ttl
// selects DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
	go s.cleanup()
	return s
}

// Put stores a response and returns its generated ID.
func (s *Store) Put(resp models.CompareResponse) string {
	id := uuid.NewString()
	resp.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = entry{
		response:  resp,
		expiresAt: s.now().Add(s.ttl),
	}
	return id
}

// Get retrieves a stored response if present and not expired.
func (s *Store) Get(id string) (models.CompareResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok || s.now().After(e.expiresAt) {
		return models.CompareResponse{}, false
	}
	return e.response, true
}

// Len reports the number of live entries (expired ones may still count
// until the next cleanup pass).
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		now := s.now()
		s.mu.Lock()
		for id, e := range s.entries {
			if now.After(e.expiresAt) {
				delete(s.entries, id)
			}
		}
		s.mu.Unlock()
	}
}
