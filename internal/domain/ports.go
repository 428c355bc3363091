package domain

import "time"

// MenuCatalog is the read-only source of purchasable items. The core
// consults it to validate item ids and capture name/price at add time,
// and never mutates it.
type MenuCatalog interface {
	// ItemByID returns the item with the exact id, or ErrItemNotFound.
	ItemByID(id string) (MenuItem, error)

	// ItemByIdentifier resolves an item by id or by case-insensitive
	// name, or returns ErrItemNotFound.
	ItemByIdentifier(identifier string) (MenuItem, error)

	// Categories returns the sorted set of category names.
	Categories() []string

	// ItemsByCategory returns all items in the category, in menu order.
	ItemsByCategory(category string) []MenuItem

	// Find returns all items matching the criteria, in menu order.
	Find(criteria FilterCriteria) []MenuItem
}

// SessionStore owns every Session. All mutation goes through Update, so
// operations on one session are serialized relative to each other while
// operations on different sessions proceed in parallel.
type SessionStore interface {
	// Create registers a fresh session with an empty cart and returns a
	// snapshot of it. Creation cannot fail.
	Create() Session

	// Get returns a snapshot of the session, or ErrSessionNotFound.
	Get(id string) (Session, error)

	// Update applies fn to the session under its lock, bumps LastActive,
	// and returns a post-update snapshot. If fn returns an error the
	// update is aborted and LastActive is left untouched; fn must not
	// mutate the session on its error paths.
	Update(id string, fn func(s *Session) error) (Session, error)

	// EvictIdle removes sessions whose LastActive is before the cutoff
	// and reports how many were removed.
	EvictIdle(cutoff time.Time) int

	// Len reports the number of live sessions.
	Len() int
}

// OrderLedger owns every Order. Records are append-only: once Create
// returns, the stored order never changes.
type OrderLedger interface {
	// Create builds a confirmed order from a cart snapshot, stores it,
	// and returns it. Create cannot fail for a non-empty cart.
	Create(items Cart, customer map[string]any, paymentMethod string) Order

	// Get returns a copy of the order, or ErrOrderNotFound.
	Get(id string) (Order, error)

	// List returns a point-in-time snapshot of all orders in creation
	// order. Later writes do not affect the returned slice.
	List() []Order
}
