package service

import (
	"context"
	"testing"

	"github.com/mariana977/taskdesk-api/internal/platform/memory"
	"github.com/mariana977/taskdesk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryServiceCreateRequiresUser(t *testing.T) {
	ctx := context.Background()
	categoryStore := memory.NewCategoryStore()
	svc := NewCategoryService(categoryStore, nil)

	_, err := svc.CreateCategory(ctx, 0, CategoryParams{Name: "work"})
	assert.ErrorIs(t, err, ErrUserRequired)

	categories, listErr := categoryStore.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, categories, "failed precondition leaves the store unchanged")
}

func TestCategoryServiceCreateOwnedByActor(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(memory.NewCategoryStore(), nil)

	category, err := svc.CreateCategory(ctx, 7, CategoryParams{Name: "work"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), category.ID)
	assert.Equal(t, int64(7), category.UserID, "ownership comes from the acting user, not the payload")
}

func TestCategoryServiceUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(memory.NewCategoryStore(), nil)

	created, err := svc.CreateCategory(ctx, 1, CategoryParams{Name: "work"})
	require.NoError(t, err)

	color := "#00ff00"
	updated, err := svc.UpdateCategory(ctx, created.ID, CategoryParams{Name: "office", Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "office", updated.Name)
	require.NotNil(t, updated.Color)
	assert.Equal(t, "#00ff00", *updated.Color)
	assert.Equal(t, created.UserID, updated.UserID, "owner is immutable")

	_, err = svc.UpdateCategory(ctx, 42, CategoryParams{Name: "nope"})
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
}

func TestCategoryServiceDeleteSilentNoOp(t *testing.T) {
	ctx := context.Background()
	categoryStore := memory.NewCategoryStore()
	svc := NewCategoryService(categoryStore, nil)

	_, err := svc.CreateCategory(ctx, 1, CategoryParams{Name: "work"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, 42), "absent ID reports success")

	categories, err := categoryStore.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}
