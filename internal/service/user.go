package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
)

// UpdateProfileParams is a partial profile patch. The role is immutable
// through this path.
type UpdateProfileParams struct {
	Username *string
	Password *string
}

// User handles profile operations and the admin user management surface.
type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

// NewUser creates the user service.
func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

// GetProfile returns the account of the given user.
func (s *User) GetProfile(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateProfile patches username and/or password of the account.
func (s *User) UpdateProfile(ctx context.Context, id uuid.UUID, params UpdateProfileParams) (model.User, error) {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	if params.Username != nil && *params.Username != user.Username {
		exists, err := s.userStore.ExistsByUsername(ctx, *params.Username)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			return model.User{}, model.ErrUsernameTaken
		}
		user.Username = *params.Username
	}
	if params.Password != nil {
		hash, err := hashPassword(*params.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	updated, err := s.userStore.Update(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return updated, nil
}

// ListAssignable returns the regular (non-admin) accounts, for populating
// assignee pickers.
func (s *User) ListAssignable(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.GetByRole(ctx, model.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListAll returns every account. Admin surface only.
func (s *User) ListAll(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes an account. Admin surface only.
func (s *User) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}
