package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mariana977/taskdesk-api/internal/domain"
	"github.com/mariana977/taskdesk-api/internal/store"
)

// CategoryStore is an in-memory implementation of store.CategoryStore.
type CategoryStore struct {
	mu         sync.Mutex
	categories []*domain.Category
	nextID     int64
}

var _ store.CategoryStore = (*CategoryStore)(nil)

// NewCategoryStore creates an empty in-memory category store.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{nextID: 1}
}

// Create implements store.CategoryStore.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = s.nextID
	s.nextID++
	s.categories = append(s.categories, cloneCategory(category))
	return nil
}

// List implements store.CategoryStore.
func (s *CategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		result = append(result, cloneCategory(c))
	}
	return result, nil
}

// GetByID implements store.CategoryStore.
func (s *CategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.ID == id {
			return cloneCategory(c), nil
		}
	}
	return nil, store.ErrCategoryNotFound
}

// Update implements store.CategoryStore.
func (s *CategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.categories {
		if existing.ID == category.ID {
			s.categories[i] = cloneCategory(category)
			return nil
		}
	}
	return store.ErrCategoryNotFound
}

// Delete implements store.CategoryStore. Absent IDs are a silent no-op.
func (s *CategoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	return nil
}

// cloneCategory copies a category so callers never hold a live alias into
// the store.
func cloneCategory(c *domain.Category) *domain.Category {
	clone := *c
	if c.Description != nil {
		description := *c.Description
		clone.Description = &description
	}
	if c.Color != nil {
		color := *c.Color
		clone.Color = &color
	}
	return &clone
}
