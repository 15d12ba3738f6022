package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role enumerates user roles.
type Role string

const (
	// RoleAdmin grants access to every task and the admin endpoints.
	RoleAdmin Role = "admin"
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	GetAll(ctx context.Context) ([]User, error)
	GetByRole(ctx context.Context, role Role) ([]User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a stored user account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
