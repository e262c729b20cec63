package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mariana977/taskdesk-api/internal/domain"
	"github.com/mariana977/taskdesk-api/internal/store"
)

// UserStore is an in-memory implementation of store.UserStore. Users are
// held in insertion order; IDs come from a counter that survives
// DeleteAll, so an ID is never issued twice.
type UserStore struct {
	mu     sync.Mutex
	users  []*domain.User
	nextID int64
}

// Ensure UserStore implements the interface.
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{nextID: 1}
}

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID
	s.nextID++
	s.users = append(s.users, cloneUser(user))
	return nil
}

// Current implements store.UserStore.
func (s *UserStore) Current(ctx context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) == 0 {
		return nil, store.ErrUserNotFound
	}
	return cloneUser(s.users[0]), nil
}

// Update implements store.UserStore.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.users {
		if existing.ID == user.ID {
			s.users[i] = cloneUser(user)
			return nil
		}
	}
	return store.ErrUserNotFound
}

// DeleteAll implements store.UserStore.
func (s *UserStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = nil
	return nil
}

// Count implements store.UserStore.
func (s *UserStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users), nil
}

// cloneUser copies a user so callers never hold a live alias into the store.
func cloneUser(u *domain.User) *domain.User {
	clone := *u
	if u.FullName != nil {
		fullName := *u.FullName
		clone.FullName = &fullName
	}
	return &clone
}
