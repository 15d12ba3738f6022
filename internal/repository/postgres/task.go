package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/taskboard/taskboard-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

// taskColumns selects a task row joined with its creator and, when present,
// its assignee.
const taskColumns = `
	t.id, t.title, t.description, t.status, t.created_at, t.updated_at,
	c.id, c.username, c.role, c.created_at, c.updated_at,
	a.id, a.username, a.role, a.created_at, a.updated_at`

const taskJoins = `
	FROM tasks t
	JOIN users c ON c.id = t.creator_id
	LEFT JOIN users a ON a.id = t.assignee_id`

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	var assigneeID *uuid.UUID
	if task.Assignee != nil {
		assigneeID = &task.Assignee.ID
	}

	query := `INSERT INTO tasks (id, title, description, status, creator_id, assignee_id)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.Status, task.Creator.ID, assigneeID,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return r.GetByID(ctx, task.ID)
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Task, error) {
	query := `SELECT` + taskColumns + taskJoins + ` WHERE t.id = $1`

	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) GetAll(ctx context.Context) ([]model.Task, error) {
	query := `SELECT` + taskColumns + taskJoins + ` ORDER BY t.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// GetRelated returns tasks where the user is creator or assignee. The OR
// predicate yields each matching row once, so no dedup is needed when the
// user is both.
func (r *TaskRepository) GetRelated(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	query := `SELECT` + taskColumns + taskJoins + `
	WHERE t.creator_id = $1 OR t.assignee_id = $1
	ORDER BY t.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get related tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *TaskRepository) Update(ctx context.Context, task model.Task) (model.Task, error) {
	var assigneeID *uuid.UUID
	if task.Assignee != nil {
		assigneeID = &task.Assignee.ID
	}

	query := `UPDATE tasks SET title = $2, description = $3, status = $4, assignee_id = $5, updated_at = NOW()
			  WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.Status, assigneeID,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.Task{}, model.ErrNotFound
	}

	return r.GetByID(ctx, task.ID)
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		task      model.Task
		aID       *uuid.UUID
		aUsername *string
		aRole     *model.Role
		aCreated  *time.Time
		aUpdated  *time.Time
	)

	err := row.Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.CreatedAt, &task.UpdatedAt,
		&task.Creator.ID, &task.Creator.Username, &task.Creator.Role, &task.Creator.CreatedAt, &task.Creator.UpdatedAt,
		&aID, &aUsername, &aRole, &aCreated, &aUpdated,
	)
	if err != nil {
		return model.Task{}, err
	}

	if aID != nil {
		task.Assignee = &model.User{
			ID:        *aID,
			Username:  *aUsername,
			Role:      *aRole,
			CreatedAt: *aCreated,
			UpdatedAt: *aUpdated,
		}
	}

	return task, nil
}

func scanTasks(rows pgx.Rows) ([]model.Task, error) {
	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
