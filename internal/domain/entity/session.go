package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a single authenticated login. The raw opaque token is
// handed to the client exactly once; only its keyed hash is stored here.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Role      Role
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
