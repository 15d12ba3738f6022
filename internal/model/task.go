package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StatusPending is the default status assigned to new tasks. Status is
// otherwise a free-form string.
const StatusPending = "pending"

// TaskStore defines persistence operations for tasks.
type TaskStore interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (Task, error)
	GetAll(ctx context.Context) ([]Task, error)
	GetRelated(ctx context.Context, userID uuid.UUID) ([]Task, error)
	Update(ctx context.Context, task Task) (Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Task represents a stored task with its creator and optional assignee.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Creator     User      `json:"createdBy"`
	Assignee    *User     `json:"assignee,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskRef carries a task identity alone. Deletion events use it because the
// full record no longer exists.
type TaskRef struct {
	ID uuid.UUID `json:"id"`
}

// CreateTaskParams contains parameters to create a task.
type CreateTaskParams struct {
	Title       string
	Description string
	AssigneeID  *uuid.UUID
}

// UpdateTaskParams contains a partial task patch. Nil fields are left
// untouched on the stored record.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *string
	AssigneeID  *uuid.UUID
}
