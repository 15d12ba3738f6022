package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-server/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	user := model.User{ID: uuid.New(), Username: "alice", Role: model.RoleUser}

	tokenString, err := j.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := j.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWT_Parse_WrongSecret(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	other := NewJWT("another-secret", time.Hour)

	tokenString, err := j.Generate(model.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = other.Parse(tokenString)
	require.Error(t, err)
}

func TestJWT_Parse_Expired(t *testing.T) {
	j := &JWT{secretKey: "secret", ttl: -time.Hour}

	tokenString, err := j.Generate(model.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = j.Parse(tokenString)
	require.Error(t, err)
}

func TestJWT_Parse_Garbage(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	_, err := j.Parse("not-a-token")
	require.Error(t, err)
}

func TestJWT_Decode_ExpiredToken(t *testing.T) {
	j := &JWT{secretKey: "secret", ttl: -time.Hour}
	user := model.User{ID: uuid.New(), Username: "bob", Role: model.RoleAdmin}

	tokenString, err := j.Generate(user)
	require.NoError(t, err)

	claims, err := j.Decode(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "bob", claims.Username)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.True(t, claims.ExpiresAt.Before(time.Now()))
}

func TestJWT_Decode_NoExpiryClaim(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": uuid.NewString()})
	tokenString, err := raw.SignedString([]byte("secret"))
	require.NoError(t, err)

	j := &JWT{secretKey: "secret", ttl: time.Hour}
	_, err = j.Decode(tokenString)
	require.Error(t, err)
}

func TestNewJWT_DefaultTTL(t *testing.T) {
	j := NewJWT("secret", 0).(*JWT)
	assert.Equal(t, DefaultTTL, j.ttl)
}
