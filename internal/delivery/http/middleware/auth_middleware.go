package middleware

import (
	"strings"

	"lounas/config"
	domainerrors "lounas/internal/domain/errors"
	"lounas/internal/usecase"

	"github.com/labstack/echo/v4"
)

// identityContextKey is where Authenticate stores the resolved caller.
const identityContextKey = "identity"

// AuthMiddleware resolves opaque session tokens into caller identities.
type AuthMiddleware struct {
	auth       usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	cookieName := "lounas_session"
	if cfg != nil && cfg.Session != nil && cfg.Session.CookieName != "" {
		cookieName = cfg.Session.CookieName
	}

	return &AuthMiddleware{auth: auth, cookieName: cookieName}
}

// TokenFromRequest extracts the session token from the Authorization header
// or, failing that, the session cookie. An empty string means no token.
func (m *AuthMiddleware) TokenFromRequest(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok && token != "" {
		return token
	}

	cookie, err := c.Cookie(m.cookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

// Authenticate validates the presented token against the session store and
// puts the resolved identity on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.TokenFromRequest(c)
		if token == "" {
			return domainerrors.ErrUnauthorized
		}

		identity, err := m.auth.Resolve(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(identityContextKey, *identity)

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds the given role.
// It must be used AFTER Authenticate. A mismatch reports the same
// unauthorized signal as a missing session, not a separate forbidden one.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := CurrentIdentity(c)
			if !ok || identity.Role.String() != requiredRole {
				return domainerrors.ErrUnauthorized
			}

			return next(c)
		}
	}
}

// CurrentIdentity returns the identity stored by Authenticate, if any.
func CurrentIdentity(c echo.Context) (usecase.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(usecase.Identity)

	return identity, ok
}
