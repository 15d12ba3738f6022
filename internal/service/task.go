package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
)

// Task enforces ownership rules on every task operation and emits lifecycle
// events. Event log writes that fail are logged and do not fail the
// operation; notifications are fire-and-forget by construction.
type Task struct {
	taskStore model.TaskStore
	userStore model.UserStore
	events    EventLogger
	notifier  model.Notifier
	logger    *logger.Logger
}

// NewTask creates the task service.
func NewTask(
	taskStore model.TaskStore,
	userStore model.UserStore,
	events EventLogger,
	notifier model.Notifier,
	logger *logger.Logger,
) *Task {
	return &Task{
		taskStore: taskStore,
		userStore: userStore,
		events:    events,
		notifier:  notifier,
		logger:    logger,
	}
}

// canAccess reports whether the actor may read or modify the task: admins,
// the creator and the current assignee qualify.
func canAccess(task model.Task, actor model.TokenClaims) bool {
	if actor.Role == model.RoleAdmin {
		return true
	}
	if task.Creator.ID == actor.UserID {
		return true
	}
	return task.Assignee != nil && task.Assignee.ID == actor.UserID
}

// canDelete is strictly narrower than canAccess: the assignee alone may not
// delete.
func canDelete(task model.Task, actor model.TokenClaims) bool {
	return actor.Role == model.RoleAdmin || task.Creator.ID == actor.UserID
}

// Create builds a task with the actor as creator. A supplied assignee id
// must resolve to an existing user or the operation fails with
// model.ErrNotFound and nothing is persisted.
func (s *Task) Create(ctx context.Context, params model.CreateTaskParams, actor model.TokenClaims) (model.Task, error) {
	task := model.Task{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		Status:      model.StatusPending,
		Creator:     model.User{ID: actor.UserID},
	}

	if params.AssigneeID != nil {
		assignee, err := s.resolveAssignee(ctx, *params.AssigneeID)
		if err != nil {
			return model.Task{}, err
		}
		task.Assignee = &assignee
	}

	saved, err := s.taskStore.Create(ctx, task)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logEvent(ctx, model.EventTaskCreated, saved)
	if saved.Assignee != nil {
		s.notifier.Notify(saved.Assignee.ID, model.EventTaskAssigned, saved)
	}

	return saved, nil
}

// List returns every task for admins, and the union of created-by-me and
// assigned-to-me for everyone else.
func (s *Task) List(ctx context.Context, actor model.TokenClaims) ([]model.Task, error) {
	if actor.Role == model.RoleAdmin {
		tasks, err := s.taskStore.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get tasks: %w", err)
		}
		return tasks, nil
	}

	tasks, err := s.taskStore.GetRelated(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get related tasks: %w", err)
	}
	return tasks, nil
}

// Get loads a task and verifies the actor may see it.
func (s *Task) Get(ctx context.Context, id uuid.UUID, actor model.TokenClaims) (model.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	if !canAccess(task, actor) {
		return model.Task{}, model.ErrPermissionDenied
	}

	return task, nil
}

// Update applies a partial patch to a task the actor may modify.
// Read authorization gates the update; there is no separate stricter check.
// When the task ends up with an assignee, they are notified. If the actor
// is that assignee, the creator is notified instead so the remaining
// stakeholder learns of the change.
func (s *Task) Update(ctx context.Context, id uuid.UUID, params model.UpdateTaskParams, actor model.TokenClaims) (model.Task, error) {
	task, err := s.Get(ctx, id, actor)
	if err != nil {
		return model.Task{}, err
	}

	if params.AssigneeID != nil {
		assignee, err := s.resolveAssignee(ctx, *params.AssigneeID)
		if err != nil {
			return model.Task{}, err
		}
		task.Assignee = &assignee
	}
	if params.Title != nil {
		task.Title = *params.Title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Status != nil {
		task.Status = *params.Status
	}

	updated, err := s.taskStore.Update(ctx, task)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	s.logEvent(ctx, model.EventTaskUpdated, updated)
	if updated.Assignee != nil {
		target := updated.Assignee.ID
		if actor.UserID == target {
			target = updated.Creator.ID
		}
		s.notifier.Notify(target, model.EventTaskUpdated, updated)
	}

	return updated, nil
}

// Delete removes a task. Only the creator or an admin may delete; the
// assignee is notified when the task was assigned.
func (s *Task) Delete(ctx context.Context, id uuid.UUID, actor model.TokenClaims) error {
	task, err := s.Get(ctx, id, actor)
	if err != nil {
		return err
	}

	if !canDelete(task, actor) {
		return model.ErrPermissionDenied
	}

	if err := s.taskStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	ref := model.TaskRef{ID: id}
	s.logEvent(ctx, model.EventTaskDeleted, ref)
	if task.Assignee != nil {
		s.notifier.Notify(task.Assignee.ID, model.EventTaskDeleted, ref)
	}

	return nil
}

func (s *Task) resolveAssignee(ctx context.Context, id uuid.UUID) (model.User, error) {
	assignee, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get assignee: %w", err)
	}
	return assignee, nil
}

func (s *Task) logEvent(ctx context.Context, kind model.EventKind, payload any) {
	if _, err := s.events.Append(ctx, kind, payload); err != nil {
		s.logger.Error("failed to log lifecycle event", "kind", kind, "error", err.Error())
	}
}
