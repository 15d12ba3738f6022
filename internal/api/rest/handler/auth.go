package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-server/internal/api/rest/middleware"
	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
)

// AuthService defines business operations for authentication.
type AuthService interface {
	Register(ctx context.Context, username, password string) (model.User, string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

// Auth handles the /auth endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"access_token"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates a new account and returns it with an access token.
func (h *Auth) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusCreated, registerResponse{User: user, AccessToken: token})
}

// Login exchanges credentials for an access token.
func (h *Auth) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, loginResponse{AccessToken: token})
}

// Logout revokes the token the request was authenticated with.
func (h *Auth) Logout(c echo.Context) error {
	token := middleware.TokenFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Successfully logged out"})
}
