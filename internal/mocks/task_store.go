package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskboard/taskboard-server/internal/model"
)

// TaskStore is a mock implementation of model.TaskStore.
type TaskStore struct {
	mock.Mock
}

func (m *TaskStore) Create(ctx context.Context, task model.Task) (model.Task, error) {
	ret := m.Called(ctx, task)
	return ret.Get(0).(model.Task), ret.Error(1)
}

func (m *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (model.Task, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.Task), ret.Error(1)
}

func (m *TaskStore) GetAll(ctx context.Context) ([]model.Task, error) {
	ret := m.Called(ctx)

	var r0 []model.Task
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Task)
	}
	return r0, ret.Error(1)
}

func (m *TaskStore) GetRelated(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	ret := m.Called(ctx, userID)

	var r0 []model.Task
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Task)
	}
	return r0, ret.Error(1)
}

func (m *TaskStore) Update(ctx context.Context, task model.Task) (model.Task, error) {
	ret := m.Called(ctx, task)
	return ret.Get(0).(model.Task), ret.Error(1)
}

func (m *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}
