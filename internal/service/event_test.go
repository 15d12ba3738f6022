package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-server/internal/mocks"
	"github.com/taskboard/taskboard-server/internal/model"
	"github.com/taskboard/taskboard-server/internal/testutil"
)

func TestEvent_Append(t *testing.T) {
	ctx := context.Background()
	store := &mocks.EventStore{}
	payload := model.TaskRef{ID: uuid.New()}

	store.On("Append", mock.Anything, mock.MatchedBy(func(e model.Event) bool {
		if e.Kind != model.EventTaskDeleted || e.ID == uuid.Nil {
			return false
		}
		var ref model.TaskRef
		return json.Unmarshal(e.Payload, &ref) == nil && ref.ID == payload.ID
	})).Return(model.Event{ID: uuid.New(), Kind: model.EventTaskDeleted}, nil)

	s := NewEvent(store, nil, testutil.MakeNoopLogger())

	event, err := s.Append(ctx, model.EventTaskDeleted, payload)
	require.NoError(t, err)
	assert.Equal(t, model.EventTaskDeleted, event.Kind)
	store.AssertExpectations(t)
}

func TestEvent_Append_StoreError(t *testing.T) {
	ctx := context.Background()
	store := &mocks.EventStore{}

	store.On("Append", mock.Anything, mock.Anything).Return(model.Event{}, assert.AnError)

	s := NewEvent(store, nil, testutil.MakeNoopLogger())

	_, err := s.Append(ctx, model.EventTaskCreated, model.TaskRef{ID: uuid.New()})
	require.Error(t, err)
}

func TestEvent_Append_UnmarshalablePayload(t *testing.T) {
	ctx := context.Background()
	store := &mocks.EventStore{}

	s := NewEvent(store, nil, testutil.MakeNoopLogger())

	_, err := s.Append(ctx, model.EventTaskCreated, make(chan int))
	require.Error(t, err)
	store.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestEvent_Append_MirrorsToArchive(t *testing.T) {
	ctx := context.Background()
	store := &mocks.EventStore{}
	archive := &mocks.EventArchive{}

	stored := model.Event{
		ID:        uuid.New(),
		Kind:      model.EventTaskCreated,
		Payload:   json.RawMessage(`{}`),
		CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	store.On("Append", mock.Anything, mock.Anything).Return(stored, nil)

	archived := make(chan string, 1)
	archive.On("Put", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		archived <- args.String(1)
	}).Return(nil)

	s := NewEvent(store, archive, testutil.MakeNoopLogger())

	_, err := s.Append(ctx, model.EventTaskCreated, model.TaskRef{ID: uuid.New()})
	require.NoError(t, err)

	select {
	case key := <-archived:
		assert.Equal(t, "events/2026-08-30/"+stored.ID.String()+".json", key)
	case <-time.After(2 * time.Second):
		t.Fatal("archive upload was not triggered")
	}
}
