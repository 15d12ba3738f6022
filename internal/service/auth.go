package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
)

// Auth handles registration, login and logout.
type Auth struct {
	userStore    model.UserStore
	tokenService *TokenService
	logger       *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(userStore model.UserStore, tokenService *TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a user with the default role and issues a token for it.
// Returns model.ErrUsernameTaken when the username is already in use.
func (a *Auth) Register(ctx context.Context, username, password string) (model.User, string, error) {
	exists, err := a.userStore.ExistsByUsername(ctx, username)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return model.User{}, "", model.ErrUsernameTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         model.RoleUser,
	})
	if err != nil {
		// The store may race another registration on the unique index.
		if errors.Is(err, model.ErrUsernameTaken) {
			return model.User{}, "", model.ErrUsernameTaken
		}
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := a.tokenService.Issue(ctx, user)
	if err != nil {
		return model.User{}, "", err
	}

	a.logger.Info("user registered", "user_id", user.ID, "username", user.Username)

	return user, tokenString, nil
}

// Login verifies credentials and issues a token. Both an unknown username
// and a wrong password surface as model.ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	user, err := a.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", model.ErrInvalidCredentials
	}

	return a.tokenService.Issue(ctx, user)
}

// Logout revokes the presented token for the remainder of its lifetime.
func (a *Auth) Logout(ctx context.Context, token string) error {
	return a.tokenService.Revoke(ctx, token)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
