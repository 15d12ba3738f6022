package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-server/internal/model"
)

// handleError maps service errors to HTTP responses. Anything outside the
// known taxonomy is reported as an opaque internal error.
func handleError(err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	case errors.Is(err, model.ErrUsernameTaken):
		return echo.NewHTTPError(http.StatusConflict, "username already exists")
	case errors.Is(err, model.ErrPermissionDenied):
		return echo.NewHTTPError(http.StatusForbidden, "permission denied")
	case errors.Is(err, model.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, model.ErrInvalidToken):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
