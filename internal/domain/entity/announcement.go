package entity

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a notice shown on the restaurant's front page while its
// Active flag is set.
type Announcement struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Active    bool
	CreatedAt time.Time
}
