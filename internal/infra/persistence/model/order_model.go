package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Items are a JSONB snapshot copied
// at order time; there is deliberately no foreign key into menu_days.
type OrderModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Items      datatypes.JSON `gorm:"type:jsonb;not null"`
	Status     string         `gorm:"type:varchar(20);not null"`
	PickupTime *time.Time
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
