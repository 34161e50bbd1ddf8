package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lounas/config"
	"lounas/internal/delivery/http/middleware"
	"lounas/internal/delivery/http/validator"
	"lounas/internal/domain/entity"
	domainerrors "lounas/internal/domain/errors"
	mockUsecase "lounas/internal/mocks/usecase"
	"lounas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandlerTestConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			TTL:        time.Hour,
			CookieName: "lounas_session",
		},
	}
}

// serveJSON runs one handler invocation the way the real server would,
// including validation and the shared error handler.
func serveJSON(t *testing.T, method, target, body string, setup func(c echo.Context), h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	if err := h(c); err != nil {
		middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)
	}

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestAuthHandler_Register_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newHandlerTestConfig(), newDiscardLogger())

	user := &entity.User{
		ID:    uuid.New(),
		Email: "new@example.com",
		Role:  entity.RoleCustomer,
	}
	uc.On("Register", mock.Anything, usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "Password123!",
	}).Return(&usecase.AuthOutput{
		Token:     "raw-token",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      user,
	}, nil)

	rec := serveJSON(t, http.MethodPost, "/auth/register",
		`{"email":"new@example.com","password":"Password123!"}`, nil, h.Register)

	assert.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "raw-token", data["token"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "lounas_session", cookies[0].Name)
	assert.Equal(t, "raw-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_Register_ShortPasswordRejected(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newHandlerTestConfig(), newDiscardLogger())

	rec := serveJSON(t, http.MethodPost, "/auth/register",
		`{"email":"new@example.com","password":"short"}`, nil, h.Register)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errInfo["code"])
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newHandlerTestConfig(), newDiscardLogger())

	uc.On("Login", mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := serveJSON(t, http.MethodPost, "/auth/login",
		`{"email":"user@example.com","password":"wrong-password"}`, nil, h.Login)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "INVALID_CREDENTIALS", errInfo["code"])
}

func TestAuthHandler_AdminLogin_UsesAdminFlow(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newHandlerTestConfig(), newDiscardLogger())

	admin := &entity.User{ID: uuid.New(), Email: "admin@example.com", Role: entity.RoleAdmin}
	uc.On("AdminLogin", mock.Anything, usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "super-secret",
	}).Return(&usecase.AuthOutput{
		Token:     "admin-token",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      admin,
	}, nil)

	rec := serveJSON(t, http.MethodPost, "/auth/admin/login",
		`{"email":"admin@example.com","password":"super-secret"}`, nil, h.AdminLogin)

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthHandler_Logout_TokenFromBearerHeader(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newHandlerTestConfig(), newDiscardLogger())

	uc.On("Logout", mock.Anything, "raw-token").Return(nil)

	rec := serveJSON(t, http.MethodPost, "/auth/logout", "", func(c echo.Context) {
		c.Request().Header.Set("Authorization", "Bearer raw-token")
	}, h.Logout)

	assert.Equal(t, http.StatusOK, rec.Code)

	// The session cookie gets cleared on the way out.
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "lounas_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_Logout_WithoutTokenStillSucceeds(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newHandlerTestConfig(), newDiscardLogger())

	uc.On("Logout", mock.Anything, "").Return(nil)

	rec := serveJSON(t, http.MethodPost, "/auth/logout", "", nil, h.Logout)

	assert.Equal(t, http.StatusOK, rec.Code)
}
