package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/taskboard/taskboard-server/internal/model"
)

// EventStore is a mock implementation of model.EventStore.
type EventStore struct {
	mock.Mock
}

func (m *EventStore) Append(ctx context.Context, event model.Event) (model.Event, error) {
	ret := m.Called(ctx, event)
	return ret.Get(0).(model.Event), ret.Error(1)
}

// EventArchive is a mock implementation of model.EventArchive.
type EventArchive struct {
	mock.Mock
}

func (m *EventArchive) Put(ctx context.Context, key string, data []byte) error {
	ret := m.Called(ctx, key, data)
	return ret.Error(0)
}

// EventLogger is a mock for the task service's event logging port.
type EventLogger struct {
	mock.Mock
}

func (m *EventLogger) Append(ctx context.Context, kind model.EventKind, payload any) (model.Event, error) {
	ret := m.Called(ctx, kind, payload)
	return ret.Get(0).(model.Event), ret.Error(1)
}
