// Command seed provisions an initial admin account and a couple of demo
// users. It is idempotent: accounts that already exist are left untouched.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-server/internal/config"
	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
	"github.com/taskboard/taskboard-server/internal/repository/postgres"
)

type seedUser struct {
	username string
	password string
	role     model.Role
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)

	users := []seedUser{
		{username: "admin", password: "admin", role: model.RoleAdmin},
		{username: "alice", password: "password", role: model.RoleUser},
		{username: "bob", password: "password", role: model.RoleUser},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			logger.Fatal("failed to hash password", "username", u.username, "error", err)
		}

		_, err = userRepo.Create(ctx, model.User{
			ID:           uuid.New(),
			Username:     u.username,
			PasswordHash: string(hash),
			Role:         u.role,
		})
		if err != nil {
			if errors.Is(err, model.ErrUsernameTaken) {
				logger.Info("user already exists, skipping", "username", u.username)
				continue
			}
			logger.Fatal("failed to create user", "username", u.username, "error", err)
		}
		logger.Info("user created", "username", u.username, "role", u.role)
	}
}
