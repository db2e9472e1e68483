package models

import "time"

// PickupAddress is the sentinel stored in DeliveryAddress when the
// customer picks the order up at the counter (no delivery fee applies).
const PickupAddress = "pickup"

// Order is a customer's purchase. Total is computed once at creation
// (items subtotal plus delivery fee) and never recomputed afterwards,
// even though Status keeps changing.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	Reference       string      `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;default:'created'" json:"status"`
	Total           float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	DeliveryFee     float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"delivery_fee"`
	DeliveryAddress *string     `gorm:"type:varchar(255)" json:"delivery_address,omitempty"`
	CreatedAt       time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null" json:"updated_at"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// IsPickup reports whether the order carries no delivery address.
func (o *Order) IsPickup() bool {
	return o.DeliveryAddress == nil || *o.DeliveryAddress == "" || *o.DeliveryAddress == PickupAddress
}
