package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	restctx "github.com/taskboard/taskboard-server/internal/api/rest/context"
	"github.com/taskboard/taskboard-server/internal/api/rest/handler"
	"github.com/taskboard/taskboard-server/internal/api/rest/router"
	httpServer "github.com/taskboard/taskboard-server/internal/api/rest/server"
	"github.com/taskboard/taskboard-server/internal/api/ws"
	"github.com/taskboard/taskboard-server/internal/config"
	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
	"github.com/taskboard/taskboard-server/internal/notify"
	"github.com/taskboard/taskboard-server/internal/repository/postgres"
	"github.com/taskboard/taskboard-server/internal/server"
	"github.com/taskboard/taskboard-server/internal/service"
	storage "github.com/taskboard/taskboard-server/internal/storage/minio"
	"github.com/taskboard/taskboard-server/internal/token"
	"github.com/taskboard/taskboard-server/internal/ttlcache"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
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
	taskRepo := postgres.NewTaskRepository(db)
	eventRepo := postgres.NewEventLogRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	revocations := ttlcache.New()
	tokenService := service.NewTokenService(tokenManager, revocations, logger)
	authService := service.NewAuth(userRepo, tokenService, logger)
	userService := service.NewUser(userRepo, logger)

	var archive model.EventArchive
	if cfg.Archive.Enabled {
		minioClient, err := minio.New(cfg.Archive.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Archive.AccessKey, cfg.Archive.SecretKey, ""),
			Secure: cfg.Archive.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to create minio client", "error", err)
		}
		archive, err = storage.NewArchive(ctx, minioClient, cfg.Archive.Bucket)
		if err != nil {
			logger.Fatal("failed to initialize event archive", "error", err)
		}
	}
	eventService := service.NewEvent(eventRepo, archive, logger)

	hub := notify.NewHub(cfg.Notify.QueueSize, logger)
	taskService := service.NewTask(taskRepo, userRepo, eventService, hub, logger)

	ctxMgr := restctx.NewManager()
	gateway := ws.NewGateway(hub, tokenService, logger)

	authHandler := handler.NewAuth(authService, logger)
	taskHandler := handler.NewTask(taskService, ctxMgr, logger)
	userHandler := handler.NewUser(userService, ctxMgr, logger)
	adminHandler := handler.NewAdmin(userService, logger)

	r := router.New(authHandler, taskHandler, userHandler, adminHandler, gateway, tokenService, ctxMgr, cfg.HTTP.RequestTimeout, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
