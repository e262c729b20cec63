package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mariana977/taskdesk-api/internal/domain"
	"github.com/mariana977/taskdesk-api/internal/store"
)

// UserParams carries the caller-supplied fields of a user, used for both
// creation and wholesale update.
type UserParams struct {
	Username    string
	Email       string
	FullName    *string
	Preferences *domain.Preferences
}

// UserService manages the account lifecycle. The system addresses a
// single account at a time; the acting user's ID is resolved by the
// identity middleware and threaded in explicitly.
type UserService interface {
	// CreateUser registers a new user with defaulted preferences.
	CreateUser(ctx context.Context, params UserParams) (*domain.User, error)

	// GetUser fetches the acting user. Returns store.ErrUserNotFound if
	// no user is registered.
	GetUser(ctx context.Context, actorID int64) (*domain.User, error)

	// UpdateUser overwrites the acting user's username, email, full name,
	// and preferences wholesale. ID and creation time are immutable.
	// Returns store.ErrUserNotFound if no user is registered.
	UpdateUser(ctx context.Context, actorID int64, params UserParams) (*domain.User, error)

	// DeleteAccount clears the entire user store, including any users
	// created after the acting one. Returns store.ErrUserNotFound if no
	// user is registered.
	DeleteAccount(ctx context.Context, actorID int64) error
}

type userService struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a UserService backed by the given store.
func NewUserService(userStore store.UserStore, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

func (s *userService) CreateUser(ctx context.Context, params UserParams) (*domain.User, error) {
	user, err := domain.NewUser(params.Username, params.Email, params.FullName, params.Preferences)
	if err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Debug("user created", slog.Int64("user_id", user.ID))
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, actorID int64) (*domain.User, error) {
	if actorID <= 0 {
		return nil, store.ErrUserNotFound
	}

	user, err := s.userStore.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user.ID != actorID {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UpdateUser(
	ctx context.Context,
	actorID int64,
	params UserParams,
) (*domain.User, error) {
	user, err := s.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	// Preferences are replaced wholesale, not merged; empty fields take
	// the defaults the same way creation does.
	prefs := domain.DefaultPreferences()
	if params.Preferences != nil {
		prefs = *params.Preferences
		prefs.Normalize()
	}

	user.Username = params.Username
	user.Email = params.Email
	user.FullName = params.FullName
	user.Preferences = prefs

	if err := s.userStore.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Debug("user updated", slog.Int64("user_id", user.ID))
	return user, nil
}

func (s *userService) DeleteAccount(ctx context.Context, actorID int64) error {
	if _, err := s.GetUser(ctx, actorID); err != nil {
		return err
	}

	// Account deletion is a destructive wholesale clear of the user store.
	if err := s.userStore.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.logger.Info("account deleted", slog.Int64("user_id", actorID))
	return nil
}
