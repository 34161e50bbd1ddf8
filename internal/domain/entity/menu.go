package entity

import (
	"time"

	"github.com/google/uuid"
)

// DietTag marks a dish as fitting a dietary restriction. The short codes
// follow Finnish lunch-menu conventions.
type DietTag string

const (
	// DietVegetarian marks a vegetarian dish.
	DietVegetarian DietTag = "V"
	// DietVegan marks a vegan dish.
	DietVegan DietTag = "Ve"
	// DietLactoseFree marks a lactose-free dish.
	DietLactoseFree DietTag = "L"
	// DietGlutenFree marks a gluten-free dish.
	DietGlutenFree DietTag = "G"
)

// IsValid checks if the DietTag is a known value.
func (t DietTag) IsValid() bool {
	switch t {
	case DietVegetarian, DietVegan, DietLactoseFree, DietGlutenFree:
		return true
	default:
		return false
	}
}

// Dish is a single menu offering with price, dietary tags and allergen
// disclosures.
type Dish struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Diet        []DietTag `json:"diet"`
	Allergens   []string  `json:"allergens"`
}

// MenuDay is the set of dishes offered on a specific calendar date.
// At most one MenuDay exists per date; writes replace the day wholesale.
type MenuDay struct {
	ID      uuid.UUID
	Date    time.Time // calendar date, normalized to midnight UTC
	Weekday string
	Dishes  []Dish
}

// DateOnly strips the clock from t, keeping the calendar date at midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
