package model

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventKind enumerates task lifecycle events.
type EventKind string

const (
	// EventTaskCreated is emitted when a task is created.
	EventTaskCreated EventKind = "task_created"
	// EventTaskUpdated is emitted when a task is modified.
	EventTaskUpdated EventKind = "task_updated"
	// EventTaskDeleted is emitted when a task is removed. Its payload
	// carries the task id only.
	EventTaskDeleted EventKind = "task_deleted"
	// EventTaskAssigned is delivered to a user when a task is assigned
	// to them at creation time.
	EventTaskAssigned EventKind = "task_assigned"
)

// EventStore defines the append-only persistence for lifecycle events.
// There is no read API; the log exists for audit.
type EventStore interface {
	Append(ctx context.Context, event Event) (Event, error)
}

// EventArchive mirrors logged events into long-term object storage.
type EventArchive interface {
	Put(ctx context.Context, key string, data []byte) error
}

// Event is an immutable record of a task lifecycle transition.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Kind      EventKind       `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}
