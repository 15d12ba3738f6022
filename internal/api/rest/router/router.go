package router

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/taskboard/taskboard-server/internal/api/rest/handler"
	"github.com/taskboard/taskboard-server/internal/api/rest/middleware"
	"github.com/taskboard/taskboard-server/internal/api/ws"
	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
)

// Router wires handlers and middleware into an echo instance.
type Router struct {
	authHandler    *handler.Auth
	taskHandler    *handler.Task
	userHandler    *handler.User
	adminHandler   *handler.Admin
	gateway        *ws.Gateway
	tokens         middleware.TokenVerifier
	contextManager model.ContextManager
	requestTimeout time.Duration
	logger         *logger.Logger
}

// New creates a Router instance over the given handlers.
func New(
	authHandler *handler.Auth,
	taskHandler *handler.Task,
	userHandler *handler.User,
	adminHandler *handler.Admin,
	gateway *ws.Gateway,
	tokens middleware.TokenVerifier,
	contextManager model.ContextManager,
	requestTimeout time.Duration,
	logger *logger.Logger,
) *Router {
	return &Router{
		authHandler:    authHandler,
		taskHandler:    taskHandler,
		userHandler:    userHandler,
		adminHandler:   adminHandler,
		gateway:        gateway,
		tokens:         tokens,
		contextManager: contextManager,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

// Register builds the echo instance with all routes and middleware.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)
	requireAdmin := middleware.NewRequireAdmin(r.contextManager)

	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(logging.Handle)
	e.Use(middleware.ContextTimeout(r.requestTimeout))

	auth := e.Group("/auth")
	auth.POST("/register", r.authHandler.Register)
	auth.POST("/login", r.authHandler.Login)
	auth.POST("/logout", r.authHandler.Logout, authenticate.Handle)

	tasks := e.Group("/tasks", authenticate.Handle)
	tasks.POST("", r.taskHandler.Create)
	tasks.GET("", r.taskHandler.List)
	tasks.GET("/:id", r.taskHandler.Get)
	tasks.PUT("/:id", r.taskHandler.Update)
	tasks.DELETE("/:id", r.taskHandler.Delete)

	users := e.Group("/users", authenticate.Handle)
	users.GET("", r.userHandler.List)
	users.GET("/profile", r.userHandler.GetProfile)
	users.PUT("/profile", r.userHandler.UpdateProfile)

	admin := e.Group("/admin", authenticate.Handle, requireAdmin.Handle)
	admin.GET("/users", r.adminHandler.ListUsers)
	admin.GET("/users/:id", r.adminHandler.GetUser)
	admin.DELETE("/users/:id", r.adminHandler.DeleteUser)

	// The gateway authenticates the handshake itself: websocket clients
	// may pass the token as a query parameter, which the HTTP guard does
	// not accept.
	e.GET("/ws", r.gateway.Handle)

	return e
}
