package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
)

// TaskService defines business operations for task management.
type TaskService interface {
	Create(ctx context.Context, params model.CreateTaskParams, actor model.TokenClaims) (model.Task, error)
	List(ctx context.Context, actor model.TokenClaims) ([]model.Task, error)
	Get(ctx context.Context, id uuid.UUID, actor model.TokenClaims) (model.Task, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateTaskParams, actor model.TokenClaims) (model.Task, error)
	Delete(ctx context.Context, id uuid.UUID, actor model.TokenClaims) error
}

// Task handles the /tasks endpoints.
type Task struct {
	taskService    TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		taskService:    taskService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssigneeID  *uuid.UUID `json:"assigneeId"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	AssigneeID  *uuid.UUID `json:"assigneeId"`
}

// Create handles POST /tasks.
func (h *Task) Create(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	task, err := h.taskService.Create(c.Request().Context(), model.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
	}, actor)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

// List handles GET /tasks.
func (h *Task) List(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.List(c.Request().Context(), actor)
	if err != nil {
		return handleError(err)
	}

	if tasks == nil {
		tasks = []model.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get handles GET /tasks/:id.
func (h *Task) Get(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Get(c.Request().Context(), id, actor)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// Update handles PUT /tasks/:id.
func (h *Task) Update(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	task, err := h.taskService.Update(c.Request().Context(), id, model.UpdateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
	}, actor)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /tasks/:id.
func (h *Task) Delete(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), id, actor); err != nil {
		return handleError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Task) actor(c echo.Context) (model.TokenClaims, error) {
	claims, ok := h.contextManager.GetClaims(c.Request().Context())
	if !ok {
		return model.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return claims, nil
}

func taskID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid task id")
	}
	return id, nil
}
