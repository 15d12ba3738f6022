package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
	"github.com/taskboard/taskboard-server/internal/service"
)

// UserService defines business operations for user profiles.
type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, params service.UpdateProfileParams) (model.User, error)
	ListAssignable(ctx context.Context) ([]model.User, error)
}

// User handles the /users endpoints.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// assignableUserResponse exposes only what assignee pickers need.
type assignableUserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type updateProfileRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// List handles GET /users.
func (h *User) List(c echo.Context) error {
	users, err := h.userService.ListAssignable(c.Request().Context())
	if err != nil {
		return handleError(err)
	}

	out := make([]assignableUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, assignableUserResponse{ID: u.ID, Username: u.Username})
	}
	return c.JSON(http.StatusOK, out)
}

// GetProfile handles GET /users/profile.
func (h *User) GetProfile(c echo.Context) error {
	claims, ok := h.contextManager.GetClaims(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	user, err := h.userService.GetProfile(c.Request().Context(), claims.UserID)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /users/profile.
func (h *User) UpdateProfile(c echo.Context) error {
	claims, ok := h.contextManager.GetClaims(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), claims.UserID, service.UpdateProfileParams{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, user)
}
