package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mariana977/taskdesk-api/internal/api/shared"
	"github.com/mariana977/taskdesk-api/internal/domain"
	"github.com/mariana977/taskdesk-api/internal/service"
)

// UpsertUserRequest represents the request body for creating the account
// and for replacing its fields. A missing preferences object, or missing
// fields inside it, take the documented defaults.
type UpsertUserRequest struct {
	Username    string              `json:"username"    validate:"required"`
	Email       string              `json:"email"       validate:"required"`
	FullName    *string             `json:"full_name"`
	Preferences *domain.Preferences `json:"preferences"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID          int64              `json:"id"`
	Username    string             `json:"username"`
	Email       string             `json:"email"`
	FullName    *string            `json:"full_name"`
	CreatedAt   time.Time          `json:"created_at"`
	Preferences domain.Preferences `json:"preferences"`
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		userService: userService,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// CreateUser handles POST /users requests
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UpsertUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), service.UserParams{
		Username:    req.Username,
		Email:       req.Email,
		FullName:    req.FullName,
		Preferences: req.Preferences,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("user created", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// GetCurrentUser handles GET /users/me requests
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "No users registered")
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// UpdateCurrentUser handles PUT /users/me requests
func (h *UserHandler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "No users registered")
		return
	}

	var req UpsertUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), userID, service.UserParams{
		Username:    req.Username,
		Email:       req.Email,
		FullName:    req.FullName,
		Preferences: req.Preferences,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("user updated", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// DeleteCurrentUser handles DELETE /users/me requests. Deleting the
// account clears the entire user store.
func (h *UserHandler) DeleteCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "No users registered")
		return
	}

	if err := h.userService.DeleteAccount(r.Context(), userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("account deleted", slog.Int64("user_id", userID))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Account deleted"})
}

// userToResponse converts a domain.User to a UserResponse
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FullName:    user.FullName,
		CreatedAt:   user.CreatedAt,
		Preferences: user.Preferences,
	}
}
