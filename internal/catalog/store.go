package catalog

import (
	"showgrip/internal/domain"
)

// Store holds the raw flat show list as supplied by the loader.
// Storage only; all derivation happens in the view pipeline.
type Store struct {
	shows []domain.Show
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a freshly loaded show list
func (s *Store) Replace(shows []domain.Show) {
	s.shows = shows
}

// Shows returns the current show list
func (s *Store) Shows() []domain.Show {
	return s.shows
}

// Len returns the number of shows
func (s *Store) Len() int {
	return len(s.shows)
}
