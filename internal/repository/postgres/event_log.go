package postgres

import (
	"context"
	"fmt"

	"github.com/taskboard/taskboard-server/internal/model"
)

var _ model.EventStore = (*EventLogRepository)(nil)

type EventLogRepository struct {
	db *Connection
}

func NewEventLogRepository(db *Connection) *EventLogRepository {
	return &EventLogRepository{
		db: db,
	}
}

// Append inserts a lifecycle event. The log is write-only; rows are never
// updated or deleted.
func (r *EventLogRepository) Append(ctx context.Context, event model.Event) (model.Event, error) {
	query := `INSERT INTO event_logs (id, kind, payload)
			  VALUES ($1, $2, $3)
			  RETURNING id, kind, payload, created_at`

	var savedEvent model.Event
	err := r.db.QueryRow(ctx, query,
		event.ID, string(event.Kind), []byte(event.Payload),
	).Scan(
		&savedEvent.ID, &savedEvent.Kind, &savedEvent.Payload, &savedEvent.CreatedAt,
	)
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to append event: %w", err)
	}

	return savedEvent, nil
}
