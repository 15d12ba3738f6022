package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/taskboard/taskboard-server/internal/model"
)

// TokenManager is a mock implementation of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Generate(user model.User) (string, error) {
	ret := m.Called(user)
	return ret.String(0), ret.Error(1)
}

func (m *TokenManager) Parse(token string) (model.TokenClaims, error) {
	ret := m.Called(token)
	return ret.Get(0).(model.TokenClaims), ret.Error(1)
}

func (m *TokenManager) Decode(token string) (model.TokenClaims, error) {
	ret := m.Called(token)
	return ret.Get(0).(model.TokenClaims), ret.Error(1)
}

// RevocationStore is a mock implementation of model.RevocationStore.
type RevocationStore struct {
	mock.Mock
}

func (m *RevocationStore) Set(ctx context.Context, key string, ttl time.Duration) error {
	ret := m.Called(ctx, key, ttl)
	return ret.Error(0)
}

func (m *RevocationStore) Exists(ctx context.Context, key string) (bool, error) {
	ret := m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}
