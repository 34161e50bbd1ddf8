package usecase

import (
	"context"

	"lounas/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAnnouncementInput defines the data required to publish an announcement.
type CreateAnnouncementInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Active  bool   `json:"active"`
}

// AnnouncementUsecase defines the interface for front-page announcements.
type AnnouncementUsecase interface {
	// ListActive returns announcements currently shown to customers.
	ListActive(ctx context.Context) ([]*entity.Announcement, error)

	// ListAll returns every announcement, active or not. Admin only.
	ListAll(ctx context.Context, identity Identity) ([]*entity.Announcement, error)

	// Create publishes a new announcement. Admin only.
	Create(ctx context.Context, identity Identity, input CreateAnnouncementInput) (*entity.Announcement, error)

	// Toggle flips an announcement's active flag and returns the new value.
	// Admin only.
	Toggle(ctx context.Context, identity Identity, id uuid.UUID) (bool, error)
}
