package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
)

// TokenVerifier checks bearer tokens against the revocation cache and the
// signature/expiry rules.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (model.TokenClaims, error)
	IsRevoked(ctx context.Context, token string) bool
}

// Authenticate is the per-request access guard. It rejects absent, malformed,
// revoked and invalid tokens before any business logic runs and attaches the
// decoded identity to the request context. The rejection message never
// distinguishes why a presented token failed.
type Authenticate struct {
	tokens         TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle wraps an echo handler with the access guard.
func (m *Authenticate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "authorization header not found")
		}

		token := TokenFromHeader(header)
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "token not provided")
		}

		ctx := c.Request().Context()

		if m.tokens.IsRevoked(ctx, token) {
			m.logger.Debug("rejected revoked token", "path", c.Path())
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		claims, err := m.tokens.Verify(ctx, token)
		if err != nil {
			m.logger.Debug("rejected invalid token", "path", c.Path())
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		c.SetRequest(c.Request().WithContext(m.contextManager.SetClaims(ctx, claims)))
		return next(c)
	}
}

// TokenFromHeader extracts the token part of a "Bearer <token>" header.
// Returns empty when no token follows the scheme.
func TokenFromHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
