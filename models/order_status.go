package models

import "fmt"

// OrderStatus is the lifecycle state of an order as shown on the
// restaurant dashboard.
type OrderStatus string

const (
	StatusCreated          OrderStatus = "created"
	StatusAwaitingDelivery OrderStatus = "awaiting_delivery"
	StatusOutForDelivery   OrderStatus = "out_for_delivery"
	StatusDelivered        OrderStatus = "delivered"
	StatusCancelled        OrderStatus = "cancelled"
)

// AllOrderStatuses lists every recognized status, in lifecycle order.
var AllOrderStatuses = []OrderStatus{
	StatusCreated,
	StatusAwaitingDelivery,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// ParseOrderStatus validates a raw status string coming from a request body.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	for _, s := range AllOrderStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unrecognized order status %q", raw)
}
