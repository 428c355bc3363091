package domain

import "errors"

var (
	// ErrSessionNotFound indicates an unknown session id.
	ErrSessionNotFound = errors.New("invalid session ID")

	// ErrItemNotFound indicates an identifier absent from the menu catalog.
	ErrItemNotFound = errors.New("item not found")

	// ErrOrderNotFound indicates an unknown order id.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidQuantity indicates a non-positive cart quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrEmptyCart indicates a checkout attempt on a cart with no lines.
	ErrEmptyCart = errors.New("cannot checkout with empty cart")
)
