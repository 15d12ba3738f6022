package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
)

// AdminService defines the admin user management operations.
type AdminService interface {
	ListAll(ctx context.Context) ([]model.User, error)
	GetProfile(ctx context.Context, id uuid.UUID) (model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Admin handles the /admin endpoints. Pass-through CRUD: route-level
// middleware already established the caller is an admin.
type Admin struct {
	adminService AdminService
	logger       *logger.Logger
}

// NewAdmin creates a new Admin handler.
func NewAdmin(adminService AdminService, logger *logger.Logger) *Admin {
	return &Admin{
		adminService: adminService,
		logger:       logger,
	}
}

// ListUsers handles GET /admin/users.
func (h *Admin) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListAll(c.Request().Context())
	if err != nil {
		return handleError(err)
	}

	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser handles GET /admin/users/:id.
func (h *Admin) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := h.adminService.GetProfile(c.Request().Context(), id)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *Admin) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.adminService.Delete(c.Request().Context(), id); err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
