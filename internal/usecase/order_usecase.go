package usecase

import (
	"context"
	"time"

	"lounas/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is one line of a new order. The name and price are copied
// into the ledger as a snapshot.
type OrderItemInput struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
}

// CreateOrderInput defines the data required to place a pickup order.
type CreateOrderInput struct {
	Items      []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	PickupTime *time.Time       `json:"pickup_time"`
}

// OrderUsecase defines the interface for order ledger operations.
type OrderUsecase interface {
	// Create places a new order for the calling customer. The order starts
	// in the pending status.
	Create(ctx context.Context, identity Identity, input CreateOrderInput) (*entity.Order, error)

	// ListOwn returns the caller's own orders, newest first.
	ListOwn(ctx context.Context, identity Identity) ([]*entity.Order, error)

	// ListAll returns the full ledger, newest first. Admin only.
	ListAll(ctx context.Context, identity Identity) ([]*entity.Order, error)

	// UpdateStatus moves an order to the given status. Admin only.
	UpdateStatus(ctx context.Context, identity Identity, id uuid.UUID, status string) error
}
