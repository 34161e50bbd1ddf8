package repository

import (
	"context"
	"errors"

	"lounas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAnnouncementNotFound is returned when a toggle references a missing announcement.
var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementRepository defines persistence operations for announcements.
type AnnouncementRepository interface {
	// Create persists a new announcement and writes back its generated id.
	Create(ctx context.Context, announcement *entity.Announcement) error

	// FindActive retrieves active announcements, newest first.
	FindActive(ctx context.Context) ([]*entity.Announcement, error)

	// FindAll retrieves every announcement, newest first.
	FindAll(ctx context.Context) ([]*entity.Announcement, error)

	// Toggle atomically flips the active flag and returns the new value.
	// Returns ErrAnnouncementNotFound when the id does not exist.
	Toggle(ctx context.Context, id uuid.UUID) (bool, error)
}
