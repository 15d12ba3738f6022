package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
)

// archiveTimeout bounds the asynchronous archive upload for a single event.
const archiveTimeout = 10 * time.Second

// EventLogger records task lifecycle events. The Task service writes through
// this interface only.
type EventLogger interface {
	Append(ctx context.Context, kind model.EventKind, payload any) (model.Event, error)
}

// Event is the append-only lifecycle event log. Every event is persisted to
// the store; when an archive is configured, a JSON copy of each record is
// mirrored into object storage asynchronously.
type Event struct {
	store   model.EventStore
	archive model.EventArchive
	logger  *logger.Logger
}

var _ EventLogger = (*Event)(nil)

// NewEvent creates the event log service. archive may be nil.
func NewEvent(store model.EventStore, archive model.EventArchive, logger *logger.Logger) *Event {
	return &Event{
		store:   store,
		archive: archive,
		logger:  logger,
	}
}

// Append records a lifecycle event. The caller is not blocked beyond the
// store's own write acknowledgment; archiving happens in the background and
// its failures are logged, never surfaced.
func (s *Event) Append(ctx context.Context, kind model.EventKind, payload any) (model.Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to marshal event payload: %w", err)
	}

	event, err := s.store.Append(ctx, model.Event{
		ID:      uuid.New(),
		Kind:    kind,
		Payload: data,
	})
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to append event: %w", err)
	}

	if s.archive != nil {
		go s.archiveEvent(event)
	}

	return event, nil
}

func (s *Event) archiveEvent(event model.Event) {
	// Detached from the request context: the triggering operation has
	// already been acknowledged.
	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to marshal event for archive", "event_id", event.ID, "error", err.Error())
		return
	}

	key := fmt.Sprintf("events/%s/%s.json", event.CreatedAt.UTC().Format("2006-01-02"), event.ID)
	if err := s.archive.Put(ctx, key, data); err != nil {
		s.logger.Error("failed to archive event", "event_id", event.ID, "key", key, "error", err.Error())
	}
}
