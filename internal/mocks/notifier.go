package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskboard/taskboard-server/internal/model"
)

// Notifier is a mock implementation of model.Notifier.
type Notifier struct {
	mock.Mock
}

func (m *Notifier) Notify(userID uuid.UUID, event model.EventKind, payload any) {
	m.Called(userID, event, payload)
}
