// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mariana977/taskdesk-api/internal/api/shared"
	"github.com/mariana977/taskdesk-api/internal/store"
)

// IdentityMiddleware resolves the acting user for each request and stores
// its ID in the request context. Only one identity is supported: the
// current account in the user store. When no user is registered the
// context is left without an identity and each handler decides how to
// answer.
type IdentityMiddleware struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewIdentityMiddleware creates a new IdentityMiddleware.
func NewIdentityMiddleware(userStore store.UserStore, logger *slog.Logger) *IdentityMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentityMiddleware{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "identity_middleware")),
	}
}

// Resolve is the middleware handler.
func (m *IdentityMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.userStore.Current(r.Context())
		if err != nil {
			if !errors.Is(err, store.ErrUserNotFound) {
				m.logger.Error("failed to resolve identity", slog.String("error", err.Error()))
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := shared.SetUserID(r.Context(), user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
