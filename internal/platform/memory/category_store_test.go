package memory

import (
	"context"
	"testing"

	"github.com/mariana977/taskdesk-api/internal/domain"
	"github.com/mariana977/taskdesk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategory(t *testing.T, name string) *domain.Category {
	t.Helper()
	category, err := domain.NewCategory(1, name, nil, nil)
	require.NoError(t, err)
	return category
}

func TestCategoryStoreCreateAndList(t *testing.T) {
	ctx := context.Background()
	s := NewCategoryStore()

	work := newCategory(t, "work")
	require.NoError(t, s.Create(ctx, work))
	assert.Equal(t, int64(1), work.ID)

	home := newCategory(t, "home")
	require.NoError(t, s.Create(ctx, home))
	assert.Equal(t, int64(2), home.ID)

	categories, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "work", categories[0].Name, "insertion order preserved")
	assert.Equal(t, "home", categories[1].Name)
}

func TestCategoryStoreGetByID(t *testing.T) {
	ctx := context.Background()
	s := NewCategoryStore()
	require.NoError(t, s.Create(ctx, newCategory(t, "work")))

	category, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "work", category.Name)

	_, err = s.GetByID(ctx, 42)
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
}

func TestCategoryStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewCategoryStore()
	require.NoError(t, s.Create(ctx, newCategory(t, "work")))

	category, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	color := "#ff0000"
	category.Name = "office"
	category.Color = &color
	require.NoError(t, s.Update(ctx, category))

	updated, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "office", updated.Name)
	require.NotNil(t, updated.Color)
	assert.Equal(t, "#ff0000", *updated.Color)

	ghost := newCategory(t, "ghost")
	ghost.ID = 42
	assert.ErrorIs(t, s.Update(ctx, ghost), store.ErrCategoryNotFound)
}

func TestCategoryStoreDeleteAbsentIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := NewCategoryStore()
	require.NoError(t, s.Create(ctx, newCategory(t, "work")))

	require.NoError(t, s.Delete(ctx, 42))

	categories, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1, "store unchanged by absent-ID delete")

	require.NoError(t, s.Delete(ctx, 1))
	categories, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}
