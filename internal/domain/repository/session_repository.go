package repository

import (
	"context"
	"errors"

	"lounas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no live session matches a token or id.
// Expired sessions are reported as not found.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines persistence operations for server-side sessions.
type SessionRepository interface {
	// Create persists a new session. The generated id and creation
	// timestamp are written back onto the entity.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a live (non-expired) session by its id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindByTokenHash retrieves a live session by its stored token hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes the session with the given token hash.
	// Deleting a missing session is a no-op success, making logout idempotent.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes all sessions past their expiry.
	DeleteExpired(ctx context.Context) error
}
