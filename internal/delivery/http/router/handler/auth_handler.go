// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "cryptopress/internal/delivery/context"
	"cryptopress/internal/delivery/http/response"
	"cryptopress/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// authResponse is the wire shape of every token-issuing endpoint. Token
// fields are omitted on logout, which only confirms the outcome.
type authResponse struct {
	Success      bool              `json:"success"`
	Message      string            `json:"message"`
	AccessToken  string            `json:"accessToken,omitempty"`
	RefreshToken string            `json:"refreshToken,omitempty"`
	User         *usecase.UserView `json:"user,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
}

// AuthHandler holds dependencies for session-lifecycle handlers.
type AuthHandler struct {
	uc     usecase.SessionOrchestrator
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.SessionOrchestrator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, authResponse{
		Success:      true,
		Message:      "User registered successfully",
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         output.User,
		Timestamp:    time.Now(),
	})
}

// Authenticate handles the login request.
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var input *usecase.AuthenticateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid authentication input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Authenticate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, authResponse{
		Success:      true,
		Message:      "Authentication successful",
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         output.User,
		Timestamp:    time.Now(),
	})
}

// RefreshToken exchanges the refresh token presented in the Authorization
// header for a fresh pair.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")

	output, err := h.uc.Refresh(c.Request().Context(), authHeader)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, authResponse{
		Success:      true,
		Message:      "Token refreshed successfully",
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         output.User,
		Timestamp:    time.Now(),
	})
}

// Logout revokes the presented token. Missing or unknown tokens still
// answer success; logout is idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")

	if err := h.uc.Logout(c.Request().Context(), authHeader); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, authResponse{
		Success:   true,
		Message:   "Logged out successfully",
		Timestamp: time.Now(),
	})
}

// Me returns the authenticated caller's own profile.
func (h *AuthHandler) Me(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c.Request().Context())
	if identity == nil || identity.User == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Caller identity missing")
	}

	return response.Success(c, http.StatusOK, usecase.NewUserView(identity.User), "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
