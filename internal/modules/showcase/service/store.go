package service

import (
	"fmt"
	"sync"

	"folio/internal/modules/showcase/domain"
	apperrors "folio/internal/platform/errors"
)

// Store holds the current collection of each page. A load replaces the whole
// collection; readers always see a complete snapshot.
type Store struct {
	mu          sync.RWMutex
	collections map[string]domain.Collection
}

func NewStore() *Store {
	return &Store{collections: map[string]domain.Collection{}}
}

func (s *Store) Put(page string, col domain.Collection) {
	s.mu.Lock()
	s.collections[page] = col
	s.mu.Unlock()
}

// Drop forgets the page's collection so views are gated until the next
// successful load.
func (s *Store) Drop(page string) {
	s.mu.Lock()
	delete(s.collections, page)
	s.mu.Unlock()
}

func (s *Store) Get(page string) (domain.Collection, error) {
	s.mu.RLock()
	col, ok := s.collections[page]
	s.mu.RUnlock()
	if !ok {
		return domain.Collection{}, fmt.Errorf("%w: %s", apperrors.ErrNotLoaded, page)
	}
	return col, nil
}

func (s *Store) Loaded(page string) bool {
	_, err := s.Get(page)
	return err == nil
}
