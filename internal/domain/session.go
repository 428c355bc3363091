package domain

import "time"

// Session is one client's in-progress shopping context. Sessions are
// created with an empty cart and live until evicted (or for the process
// lifetime when no TTL is configured).
type Session struct {
	ID         string    `json:"session_id"`
	Cart       Cart      `json:"cart"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

// Snapshot returns a copy whose cart shares no memory with the receiver,
// so callers can hold it without observing later mutations.
func (s Session) Snapshot() Session {
	s.Cart = s.Cart.Clone()
	return s
}
