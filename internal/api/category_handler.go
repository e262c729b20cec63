package api

import (
	"log/slog"
	"net/http"

	"github.com/mariana977/taskdesk-api/internal/api/shared"
	"github.com/mariana977/taskdesk-api/internal/domain"
	"github.com/mariana977/taskdesk-api/internal/service"
)

// UpsertCategoryRequest represents the request body for creating and
// updating a category. Ownership is never caller-supplied.
type UpsertCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// CategoryResponse represents the response data for a category
type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	UserID      int64   `json:"user_id"`
}

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CategoryHandler")
	}

	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger.With(slog.String("component", "category_handler")),
	}
}

// CreateCategory handles POST /categories requests. The category is owned
// by the acting user; with no user registered the request fails with 400
// and no side effect.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req UpsertCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	// Zero when the identity middleware found no registered user; the
	// service turns that into the precondition error.
	actorID, _ := shared.GetUserID(r.Context())

	category, err := h.categoryService.CreateCategory(r.Context(), actorID, service.CategoryParams{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("category created", slog.Int64("category_id", category.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(category))
}

// ListCategories handles GET /categories requests
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, categoryToResponse(category))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// UpdateCategory handles PUT /categories/{id} requests
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	var req UpsertCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	category, err := h.categoryService.UpdateCategory(r.Context(), id, service.CategoryParams{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("category updated", slog.Int64("category_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(category))
}

// DeleteCategory handles DELETE /categories/{id} requests. Deleting an
// absent ID still reports success.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("category deleted", slog.Int64("category_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Category deleted"})
}

// categoryToResponse converts a domain.Category to a CategoryResponse
func categoryToResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Color:       category.Color,
		UserID:      category.UserID,
	}
}
