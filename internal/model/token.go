package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenManager signs and parses bearer tokens.
type TokenManager interface {
	Generate(user User) (string, error)
	// Parse validates signature and expiry and returns the claims.
	Parse(token string) (TokenClaims, error)
	// Decode extracts claims without validating signature or expiry.
	// Used by revocation, which must accept already-expired tokens.
	Decode(token string) (TokenClaims, error)
}

// RevocationStore is a key-value store with per-key TTL expiry backing the
// token denylist. An absent key means the token is not revoked.
type RevocationStore interface {
	Set(ctx context.Context, key string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}

// TokenClaims is the identity decoded from a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	Username  string
	Role      Role
	ExpiresAt time.Time
}
