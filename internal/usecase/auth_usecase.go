// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"lounas/internal/domain/entity"

	"github.com/google/uuid"
)

// Identity is the resolved caller of a request. It is derived from a live
// session and carries the session id so gated operations can re-check the
// session inside their own transaction.
type Identity struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
	Role      entity.Role
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == entity.RoleAdmin
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the opaque session token issued after registration or
// login, together with the account it belongs to.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Register creates a customer account and logs it in immediately.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login authenticates any account by email and password.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// AdminLogin authenticates an account and additionally requires the
	// admin role, failing with the same signal as a bad password.
	AdminLogin(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Logout tears down the session behind the given token. Unknown tokens
	// are a silent success.
	Logout(ctx context.Context, token string) error

	// Resolve maps a presented token to the identity of its live session.
	Resolve(ctx context.Context, token string) (*Identity, error)

	// BootstrapAdmin ensures at least one admin account exists, creating
	// one from configuration when the store has none. Safe to run on every
	// startup.
	BootstrapAdmin(ctx context.Context) error
}
