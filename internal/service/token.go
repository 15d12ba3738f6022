package service

import (
	"context"
	"fmt"
	"time"

	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
)

// revocationKeyPrefix namespaces denylist entries in the revocation store.
const revocationKeyPrefix = "revoked:"

// TokenService issues, verifies and revokes bearer tokens. Revocation is a
// denylist whose entries expire together with the token they invalidate, so
// the list never outgrows the set of live tokens.
type TokenService struct {
	manager     model.TokenManager
	revocations model.RevocationStore
	logger      *logger.Logger
	now         func() time.Time
}

// NewTokenService creates a TokenService over the given manager and
// revocation store.
func NewTokenService(manager model.TokenManager, revocations model.RevocationStore, logger *logger.Logger) *TokenService {
	return &TokenService{
		manager:     manager,
		revocations: revocations,
		logger:      logger,
		now:         time.Now,
	}
}

// Issue produces a signed token for the user.
func (s *TokenService) Issue(_ context.Context, user model.User) (string, error) {
	token, err := s.manager.Generate(user)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// Verify checks signature and expiry and returns the decoded identity.
// All failure modes collapse into model.ErrInvalidToken.
func (s *TokenService) Verify(_ context.Context, token string) (model.TokenClaims, error) {
	claims, err := s.manager.Parse(token)
	if err != nil {
		s.logger.Debug("token verification failed", "error", err.Error())
		return model.TokenClaims{}, model.ErrInvalidToken
	}
	return claims, nil
}

// Revoke invalidates a token before its natural expiry. The token is decoded
// without signature or expiry validation; it only needs a parseable expiry
// claim. Revoking an already-expired token succeeds without creating an
// entry, and revoking twice is harmless.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	claims, err := s.manager.Decode(token)
	if err != nil {
		s.logger.Debug("token revocation rejected", "error", err.Error())
		return model.ErrInvalidToken
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.revocations.Set(ctx, revocationKeyPrefix+token, ttl); err != nil {
		return fmt.Errorf("failed to store revocation: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been revoked. Unknown tokens are
// treated as not revoked; a revocation store failure is logged and also
// treated as not revoked, leaving the final decision to signature and expiry
// verification.
func (s *TokenService) IsRevoked(ctx context.Context, token string) bool {
	revoked, err := s.revocations.Exists(ctx, revocationKeyPrefix+token)
	if err != nil {
		s.logger.Error("failed to check token revocation", "error", err.Error())
		return false
	}
	return revoked
}
