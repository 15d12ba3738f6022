// Package context carries the authenticated identity through request
// contexts.
package context

import (
	"context"

	"github.com/taskboard/taskboard-server/internal/model"
)

type claimsKey struct{}

var _ model.ContextManager = (*Manager)(nil)

// Manager stores and retrieves token claims on a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetClaims returns a child context carrying the claims.
func (m *Manager) SetClaims(ctx context.Context, claims model.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims retrieves the claims set by SetClaims. The boolean reports
// whether an identity is present.
func (m *Manager) GetClaims(ctx context.Context) (model.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(model.TokenClaims)
	return claims, ok
}
