package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mariana977/taskdesk-api/internal/domain"
	"github.com/mariana977/taskdesk-api/internal/store"
)

// CategoryParams carries the caller-supplied fields of a category, used
// for both creation and update. Ownership is never caller-supplied.
type CategoryParams struct {
	Name        string
	Description *string
	Color       *string
}

// CategoryService manages task categories.
type CategoryService interface {
	// CreateCategory creates a category owned by the acting user.
	// Returns ErrUserRequired, with no side effect, when actorID is zero
	// (no user registered).
	CreateCategory(ctx context.Context, actorID int64, params CategoryParams) (*domain.Category, error)

	// ListCategories returns all categories in insertion order, unfiltered.
	ListCategories(ctx context.Context) ([]*domain.Category, error)

	// UpdateCategory overwrites the category's name, description, and
	// color. ID and owner are immutable. Returns store.ErrCategoryNotFound
	// if the ID does not exist.
	UpdateCategory(ctx context.Context, id int64, params CategoryParams) (*domain.Category, error)

	// DeleteCategory removes the category with the given ID. An absent ID
	// is a silent no-op, not an error.
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryService struct {
	categoryStore store.CategoryStore
	logger        *slog.Logger
}

// NewCategoryService creates a CategoryService backed by the given store.
func NewCategoryService(categoryStore store.CategoryStore, logger *slog.Logger) CategoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &categoryService{
		categoryStore: categoryStore,
		logger:        logger.With(slog.String("component", "category_service")),
	}
}

func (s *categoryService) CreateCategory(
	ctx context.Context,
	actorID int64,
	params CategoryParams,
) (*domain.Category, error) {
	if actorID <= 0 {
		return nil, ErrUserRequired
	}

	category, err := domain.NewCategory(actorID, params.Name, params.Description, params.Color)
	if err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}

	if err := s.categoryStore.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Debug("category created",
		slog.Int64("category_id", category.ID),
		slog.Int64("user_id", actorID))
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryStore.List(ctx)
}

func (s *categoryService) UpdateCategory(
	ctx context.Context,
	id int64,
	params CategoryParams,
) (*domain.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = params.Name
	category.Description = params.Description
	category.Color = params.Color

	if err := s.categoryStore.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.logger.Debug("category updated", slog.Int64("category_id", id))
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categoryStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Debug("category deleted", slog.Int64("category_id", id))
	return nil
}
