package usecase

import (
	"context"
	"time"

	"lounas/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// DishInput describes one dish of a menu day as submitted by the admin.
type DishInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Diet        []string `json:"diet"`
	Allergens   []string `json:"allergens"`
}

// UpsertDayInput replaces the whole menu document for one calendar date.
// Date uses the "2006-01-02" layout.
type UpsertDayInput struct {
	Date   string      `json:"date" validate:"required"`
	Dishes []DishInput `json:"dishes"`
}

// --- Output DTOs ---

// WeekOutput is the Monday-to-Sunday projection. Days holds only the dates
// that have a stored menu; dates without one are absent rather than padded
// with empty placeholders.
type WeekOutput struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Days      []*entity.MenuDay
}

// MenuUsecase defines the interface for menu calendar operations.
type MenuUsecase interface {
	// GetDay returns the menu for one calendar date ("2006-01-02"). A date
	// with no stored menu yields a day with an empty dish list.
	GetDay(ctx context.Context, date string) (*entity.MenuDay, error)

	// GetToday returns the menu for the current date.
	GetToday(ctx context.Context) (*entity.MenuDay, error)

	// GetWeek returns the Monday-to-Sunday projection around the current date.
	GetWeek(ctx context.Context) (*WeekOutput, error)

	// UpsertDay wholesale-replaces the menu for input.Date. Admin only.
	UpsertDay(ctx context.Context, identity Identity, input UpsertDayInput) (*entity.MenuDay, error)

	// DeleteDay removes a stored day by id. Admin only; deleting a missing
	// id succeeds.
	DeleteDay(ctx context.Context, identity Identity, id uuid.UUID) error
}
