package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MenuDayModel mirrors the 'menu_days' table. Dishes live in one JSONB
// column so a day is always written as a single atomic document; the unique
// index on date enforces at most one record per calendar date.
type MenuDayModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Date      time.Time      `gorm:"type:date;unique;not null"`
	Weekday   string         `gorm:"type:varchar(20)"`
	Dishes    datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuDayModel) TableName() string {
	return "menu_days"
}
