package store

import (
	"context"

	"github.com/mariana977/taskdesk-api/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// Create saves a new category to the store and assigns its ID from a
	// monotonically increasing counter.
	Create(ctx context.Context, category *domain.Category) error

	// List returns all categories in insertion order.
	List(ctx context.Context) ([]*domain.Category, error)

	// GetByID retrieves a category by its ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// Update replaces the stored category matching the given category's ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes the category with the given ID. Deleting an absent
	// ID is not an error; the store is simply left unchanged.
	Delete(ctx context.Context, id int64) error
}
