package models

import "time"

// Categories used by the front-ends for filtering and icon selection.
// They are not enforced server-side; anything else falls back to "other".
const (
	CategoryBurger = "burger"
	CategorySide   = "side"
	CategoryDrink  = "drink"
	CategoryOther  = "other"
)

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Category    *string   `gorm:"type:varchar(50)" json:"category,omitempty"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
