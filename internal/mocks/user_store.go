// Package mocks provides testify mocks for the interfaces declared in
// internal/model and the service layer ports.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskboard/taskboard-server/internal/model"
)

// UserStore is a mock implementation of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	ret := m.Called(ctx, user)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	ret := m.Called(ctx, username)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	ret := m.Called(ctx, username)
	return ret.Bool(0), ret.Error(1)
}

func (m *UserStore) GetAll(ctx context.Context) ([]model.User, error) {
	ret := m.Called(ctx)

	var r0 []model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.User)
	}
	return r0, ret.Error(1)
}

func (m *UserStore) GetByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	ret := m.Called(ctx, role)

	var r0 []model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.User)
	}
	return r0, ret.Error(1)
}

func (m *UserStore) Update(ctx context.Context, user model.User) (model.User, error) {
	ret := m.Called(ctx, user)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}
