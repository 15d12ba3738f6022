package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// ContextTimeout bounds token verification and store work by deriving a
// deadline on every request context. Handlers surface a timeout as a
// transient internal failure.
func ContextTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if timeout <= 0 {
				return next(c)
			}
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
