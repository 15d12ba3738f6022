package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-server/internal/logger"
)

// Logging logs every HTTP request with its outcome and duration.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle wraps an echo handler with request logging.
func (l *Logging) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Commit the error response first so the logged status is
			// final. Echo's error handler skips committed responses, so
			// returning err below does not write twice.
			c.Error(err)
		}

		l.logger.Info("http request completed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds())

		if err != nil {
			l.logger.Error("http request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err.Error())
		}

		return err
	}
}
