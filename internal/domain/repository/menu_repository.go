package repository

import (
	"context"
	"errors"
	"time"

	"lounas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMenuDayNotFound is returned when no menu exists for a date or id.
var ErrMenuDayNotFound = errors.New("menu day not found")

// MenuRepository defines persistence operations for the menu calendar.
// Each stored record is one document per calendar date.
type MenuRepository interface {
	// FindByDate retrieves the menu for one calendar date.
	FindByDate(ctx context.Context, date time.Time) (*entity.MenuDay, error)

	// FindRange retrieves all stored days with from <= date <= to,
	// ordered by date ascending. Missing dates are simply absent.
	FindRange(ctx context.Context, from, to time.Time) ([]*entity.MenuDay, error)

	// Upsert inserts the day or replaces an existing record for the same
	// date wholesale, in a single atomic statement. The stored record's id
	// is written back onto day.
	Upsert(ctx context.Context, day *entity.MenuDay) error

	// Delete removes the day with the given id. Deleting a missing id is a
	// no-op success.
	Delete(ctx context.Context, id uuid.UUID) error
}
