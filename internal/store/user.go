package store

import (
	"context"

	"github.com/mariana977/taskdesk-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user to the store and assigns its ID from a
	// monotonically increasing counter. IDs are never reused, even after
	// the store has been cleared.
	Create(ctx context.Context, user *domain.User) error

	// Current retrieves the current account: the earliest-created user
	// still in the store. Returns ErrUserNotFound if the store is empty.
	Current(ctx context.Context) (*domain.User, error)

	// Update replaces the stored user matching the given user's ID.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// DeleteAll removes every user from the store. This is the only form
	// of user deletion the system supports, and it is permanent.
	DeleteAll(ctx context.Context) error

	// Count returns the number of users currently in the store.
	Count(ctx context.Context) (int, error)
}
