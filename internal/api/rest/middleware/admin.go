package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-server/internal/model"
)

// RequireAdmin gates a route group to admin users. It must run after
// Authenticate, which put the identity into the request context.
type RequireAdmin struct {
	contextManager model.ContextManager
}

// NewRequireAdmin creates a new RequireAdmin middleware instance.
func NewRequireAdmin(contextManager model.ContextManager) *RequireAdmin {
	return &RequireAdmin{contextManager: contextManager}
}

// Handle wraps an echo handler with the admin role check.
func (m *RequireAdmin) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := m.contextManager.GetClaims(c.Request().Context())
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}
