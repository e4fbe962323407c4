// Package memory keeps likes and selections in process memory. It backs local
// development and tests; nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"lunchradar/internal/domain/entity"
	"lunchradar/internal/domain/repository"
)

// Store implements both repository.LikeRepository and repository.SelectionRepository.
type Store struct {
	mu         sync.RWMutex
	likes      map[string]entity.Like
	selections map[string]entity.Selection
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		likes:      make(map[string]entity.Like),
		selections: make(map[string]entity.Selection),
	}
}

var (
	_ repository.LikeRepository      = (*Store)(nil)
	_ repository.SelectionRepository = (*Store)(nil)
)

// SaveLike stores the like; an existing like keeps its original timestamp.
func (s *Store) SaveLike(_ context.Context, like *entity.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.likes[like.Key()]; !ok {
		s.likes[like.Key()] = *like
	}

	return nil
}

// DeleteLike removes the like.
func (s *Store) DeleteLike(_ context.Context, userID, restaurantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.likes, entity.LikeKey(userID, restaurantID))

	return nil
}

// ExistsLike reports whether the like is stored.
func (s *Store) ExistsLike(_ context.Context, userID, restaurantID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.likes[entity.LikeKey(userID, restaurantID)]

	return ok, nil
}

// SaveSelection overwrites the user's selection for the day.
func (s *Store) SaveSelection(_ context.Context, selection *entity.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selections[selection.Key()] = *selection

	return nil
}

// FindSelection returns a copy of the stored selection.
func (s *Store) FindSelection(_ context.Context, userID, day string) (*entity.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selection, ok := s.selections[(&entity.Selection{UserID: userID, Day: day}).Key()]
	if !ok {
		return nil, repository.ErrSelectionNotFound
	}

	return &selection, nil
}
