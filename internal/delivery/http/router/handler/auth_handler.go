// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lounas/config"
	"lounas/internal/delivery/http/response"
	"lounas/internal/domain/entity"
	"lounas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc         usecase.AuthUsecase
	cookieName string
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	cookieName := "lounas_session"
	if cfg != nil && cfg.Session != nil && cfg.Session.CookieName != "" {
		cookieName = cfg.Session.CookieName
	}

	return &AuthHandler{
		uc:         uc,
		cookieName: cookieName,
		logger:     logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

func (h *AuthHandler) toAuthResponse(output *usecase.AuthOutput) authResponse {
	return authResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		User:      toUserResponse(output.User),
	}
}

// Register handles the customer registration request. A successful
// registration is also a login; the session token comes back immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusCreated, h.toAuthResponse(output), "Registered successfully")
}

// Login handles the customer login request.
func (h *AuthHandler) Login(c echo.Context) error {
	return h.handleLogin(c, h.uc.Login)
}

// AdminLogin handles the admin login request.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.handleLogin(c, h.uc.AdminLogin)
}

func (h *AuthHandler) handleLogin(c echo.Context, login func(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error)) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusOK, h.toAuthResponse(output), "Login successful")
}

// Logout tears down the caller's session. It succeeds whether or not a live
// session was presented, so stale clients can always log out cleanly.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := h.tokenFromRequest(c)

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"status": "logged out"}, "Logout successful")
}

func (h *AuthHandler) tokenFromRequest(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok && token != "" {
		return token
	}

	cookie, err := c.Cookie(h.cookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
