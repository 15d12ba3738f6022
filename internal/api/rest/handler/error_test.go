package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-server/internal/model"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", model.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("failed to get task: %w", model.ErrNotFound), http.StatusNotFound},
		{"username taken", model.ErrUsernameTaken, http.StatusConflict},
		{"permission denied", model.ErrPermissionDenied, http.StatusForbidden},
		{"invalid credentials", model.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", model.ErrInvalidToken, http.StatusUnauthorized},
		{"unknown error", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *echo.HTTPError
			require.ErrorAs(t, handleError(tt.err), &httpErr)
			assert.Equal(t, tt.wantStatus, httpErr.Code)
		})
	}
}

func TestHandleError_HidesInternalDetail(t *testing.T) {
	var httpErr *echo.HTTPError
	require.ErrorAs(t, handleError(errors.New("dsn=postgres://secret")), &httpErr)
	assert.Equal(t, "internal server error", httpErr.Message)
}
