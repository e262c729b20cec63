package domain

import "fmt"

// Category-specific validation errors. Both wrap ErrValidation so callers
// can classify them without matching each sentinel.
var (
	// ErrEmptyCategoryName is returned when a category name is empty.
	ErrEmptyCategoryName = fmt.Errorf("%w: category name cannot be empty", ErrValidation)

	// ErrCategoryOwnerEmpty is returned when a category has no owning user.
	ErrCategoryOwnerEmpty = fmt.Errorf("%w: category user ID cannot be empty", ErrValidation)
)

// Category groups tasks under a user-chosen label. The owning user is
// fixed at creation time and never changes afterwards.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	UserID      int64   `json:"user_id"`
}

// NewCategory creates a Category owned by the given user. The ID is zero
// until the store assigns one. Returns an error if validation fails.
func NewCategory(userID int64, name string, description, color *string) (*Category, error) {
	category := &Category{
		Name:        name,
		Description: description,
		Color:       color,
		UserID:      userID,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrEmptyCategoryName
	}

	if c.UserID <= 0 {
		return ErrCategoryOwnerEmpty
	}

	return nil
}
