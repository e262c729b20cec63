package memory

import (
	"context"
	"testing"

	"github.com/mariana977/taskdesk-api/internal/domain"
	"github.com/mariana977/taskdesk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, username string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, username+"@example.com", nil, nil)
	require.NoError(t, err)
	return user
}

func TestUserStoreCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	first := newUser(t, "first")
	require.NoError(t, s.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	second := newUser(t, "second")
	require.NoError(t, s.Create(ctx, second))
	assert.Equal(t, int64(2), second.ID)
}

func TestUserStoreIDsNotReusedAfterDeleteAll(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	require.NoError(t, s.Create(ctx, newUser(t, "first")))
	require.NoError(t, s.Create(ctx, newUser(t, "second")))
	require.NoError(t, s.DeleteAll(ctx))

	third := newUser(t, "third")
	require.NoError(t, s.Create(ctx, third))
	assert.Equal(t, int64(3), third.ID, "counter survives the wholesale clear")
}

func TestUserStoreCurrent(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	_, err := s.Current(ctx)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	require.NoError(t, s.Create(ctx, newUser(t, "first")))
	require.NoError(t, s.Create(ctx, newUser(t, "second")))

	current, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", current.Username, "current account is the earliest created")
}

func TestUserStoreCurrentReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()
	require.NoError(t, s.Create(ctx, newUser(t, "first")))

	current, err := s.Current(ctx)
	require.NoError(t, err)
	current.Username = "mutated"

	again, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", again.Username, "callers must not hold live aliases")
}

func TestUserStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	user := newUser(t, "first")
	require.NoError(t, s.Create(ctx, user))

	user.Username = "renamed"
	require.NoError(t, s.Update(ctx, user))

	current, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "renamed", current.Username)

	ghost := newUser(t, "ghost")
	ghost.ID = 99
	assert.ErrorIs(t, s.Update(ctx, ghost), store.ErrUserNotFound)
}

func TestUserStoreDeleteAllClearsEveryUser(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	require.NoError(t, s.Create(ctx, newUser(t, "first")))
	require.NoError(t, s.Create(ctx, newUser(t, "second")))
	require.NoError(t, s.DeleteAll(ctx))

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = s.Current(ctx)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
