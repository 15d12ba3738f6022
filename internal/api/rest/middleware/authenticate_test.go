package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	restctx "github.com/taskboard/taskboard-server/internal/api/rest/context"
	"github.com/taskboard/taskboard-server/internal/model"
	"github.com/taskboard/taskboard-server/internal/testutil"
)

type stubVerifier struct {
	claims  model.TokenClaims
	err     error
	revoked bool
}

func (s *stubVerifier) Verify(_ context.Context, _ string) (model.TokenClaims, error) {
	return s.claims, s.err
}

func (s *stubVerifier) IsRevoked(_ context.Context, _ string) bool {
	return s.revoked
}

func TestAuthenticate(t *testing.T) {
	claims := model.TokenClaims{UserID: uuid.New(), Username: "alice", Role: model.RoleUser}

	tests := []struct {
		name       string
		header     string
		verifier   *stubVerifier
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing header",
			header:     "",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "authorization header not found",
		},
		{
			name:       "scheme without token",
			header:     "Bearer",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "token not provided",
		},
		{
			name:       "revoked token",
			header:     "Bearer tok",
			verifier:   &stubVerifier{revoked: true},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "invalid token",
		},
		{
			name:       "invalid token",
			header:     "Bearer tok",
			verifier:   &stubVerifier{err: model.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "invalid token",
		},
		{
			name:       "valid token",
			header:     "Bearer tok",
			verifier:   &stubVerifier{claims: claims},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			ctxMgr := restctx.NewManager()
			m := NewAuthenticate(tt.verifier, ctxMgr, testutil.MakeNoopLogger())

			var gotClaims model.TokenClaims
			var gotOK bool
			handler := m.Handle(func(c echo.Context) error {
				gotClaims, gotOK = ctxMgr.GetClaims(c.Request().Context())
				return c.NoContent(http.StatusOK)
			})

			err := handler(c)

			if tt.wantStatus == http.StatusOK {
				require.NoError(t, err)
				assert.True(t, gotOK)
				assert.Equal(t, claims, gotClaims)
				return
			}

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.wantStatus, httpErr.Code)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
		})
	}
}

func TestTokenFromHeader(t *testing.T) {
	assert.Equal(t, "tok", TokenFromHeader("Bearer tok"))
	assert.Equal(t, "", TokenFromHeader("Bearer"))
	assert.Equal(t, "", TokenFromHeader(""))
	// The scheme itself is not inspected; the verifier rejects bad tokens.
	assert.Equal(t, "tok", TokenFromHeader("Basic tok"))
}
