package repository

import (
	"context"
	"errors"

	"lounas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when a status update references a missing order.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence operations for the order ledger.
// Orders are append-only; only their status ever changes.
type OrderRepository interface {
	// Create persists a new order. The generated id and creation timestamp
	// are written back onto the entity.
	Create(ctx context.Context, order *entity.Order) error

	// FindByUserID retrieves all orders owned by one user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindAll retrieves the full ledger, newest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus sets the order's status unconditionally. Returns
	// ErrOrderNotFound when the id does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
