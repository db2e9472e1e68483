package services

import "errors"

// Sentinel errors surfaced by the services; controllers map them to
// HTTP status codes.
var (
	ErrEmptyOrder         = errors.New("an order needs at least one item")
	ErrInvalidQuantity    = errors.New("item quantity must be at least 1")
	ErrInvalidUnitPrice   = errors.New("item unit price must not be negative")
	ErrInvalidUser        = errors.New("user id must be a positive integer")
	ErrOrderNotFound      = errors.New("order not found")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrUnknownStatus      = errors.New("unrecognized order status")
	ErrEmailTaken         = errors.New("a user with this e-mail already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
