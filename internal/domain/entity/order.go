package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents all possible states of a pickup order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a recognized value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// OrderItem is a snapshot of a dish at order time. It copies the name and
// price so later menu edits never alter historical orders.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a customer's pickup request. Items are denormalized snapshots,
// never live references to MenuDay documents. UserID is immutable after
// creation and orders are never deleted.
type Order struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Items      []OrderItem
	Status     OrderStatus
	PickupTime *time.Time
	CreatedAt  time.Time
}
