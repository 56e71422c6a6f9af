package state

import (
	"sync"

	"detailpage/internal/domain"
)

// Store holds the single in-memory ProductData record. Every update replaces
// the whole value so readers always observe a fully consistent snapshot;
// last writer wins. The lock exists because HTTP handlers run on separate
// goroutines, not because updates ever overlap logically.
type Store struct {
	mu   sync.RWMutex
	data domain.ProductData
}

// New creates a store seeded with the given state.
func New(initial domain.ProductData) *Store {
	return &Store{data: initial.Clone()}
}

// Get returns a snapshot of the current state. The returned value is a deep
// copy; callers may mutate it freely.
func (s *Store) Get() domain.ProductData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Update applies the patch function to a copy of the current state and
// replaces the whole record with the result. The patch function receives a
// clone, so fields it does not touch carry over untouched.
func (s *Store) Update(patch func(domain.ProductData) domain.ProductData) domain.ProductData {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = patch(s.data.Clone()).Clone()
	return s.data.Clone()
}

// Replace swaps in an entirely new record.
func (s *Store) Replace(data domain.ProductData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data.Clone()
}
