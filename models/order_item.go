package models

// OrderItem is one priced line within an order. ProductName and UnitPrice
// are snapshots taken at order time: later catalog edits must not affect
// historical orders. Items live and die with their parent order.
type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"-"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Order reference omitted from JSON to avoid recursive nesting.
	Order       Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	ProductName string  `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`
}
