// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account known to the restaurant: a customer or the admin.
// Email is stored normalized to lower case and is unique across accounts.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string // bcrypt hash; the raw secret is never persisted.
	Role         Role
	CreatedAt    time.Time
}
