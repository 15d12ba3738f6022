package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskboard/taskboard-server/internal/model"
)

// Claims represents JWT claims carrying the user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID  `json:"id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
}

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 3 * time.Hour

// NewJWT creates a new JWT token manager with the provided secret key and
// token lifetime. A non-positive ttl falls back to DefaultTTL.
func NewJWT(secretKey string, ttl time.Duration) model.TokenManager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWT{secretKey: secretKey, ttl: ttl}
}

// Generate creates a signed token for the user with the configured lifetime.
func (j *JWT) Generate(user model.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse validates signature and expiry and extracts the claims.
func (j *JWT) Parse(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return model.TokenClaims{}, fmt.Errorf("token is invalid")
	}

	return toModelClaims(claims), nil
}

// Decode extracts claims without verifying signature or expiry. The expiry
// claim must still be present and parseable.
func (j *JWT) Decode(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return model.TokenClaims{}, fmt.Errorf("failed to decode token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return model.TokenClaims{}, fmt.Errorf("token has no expiry claim")
	}

	return toModelClaims(claims), nil
}

func toModelClaims(claims *Claims) model.TokenClaims {
	out := model.TokenClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out
}
