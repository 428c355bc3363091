package memstore

import (
	"sync"

	"github.com/tableside/tableside/internal/domain"
)

// Orders is the in-memory domain.OrderLedger. Records are append-only:
// nothing mutates an order after Create stores it.
type Orders struct {
	mu   sync.RWMutex
	byID map[string]domain.Order
	seq  []string // creation order, for stable listings
}

// NewOrders creates an empty order ledger.
func NewOrders() *Orders {
	return &Orders{byID: make(map[string]domain.Order)}
}

// Create builds a confirmed order from the cart snapshot and stores it.
func (o *Orders) Create(items domain.Cart, customer map[string]any, paymentMethod string) domain.Order {
	order := domain.NewOrder(items, customer, paymentMethod)

	o.mu.Lock()
	o.byID[order.ID] = order
	o.seq = append(o.seq, order.ID)
	o.mu.Unlock()

	return order.Snapshot()
}

// Get returns a copy of the order, or domain.ErrOrderNotFound.
func (o *Orders) Get(id string) (domain.Order, error) {
	o.mu.RLock()
	order, ok := o.byID[id]
	o.mu.RUnlock()

	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order.Snapshot(), nil
}

// List returns all orders in creation order. The slice and the orders in
// it are copies; callers iterate without holding any ledger lock.
func (o *Orders) List() []domain.Order {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]domain.Order, 0, len(o.seq))
	for _, id := range o.seq {
		out = append(out, o.byID[id].Snapshot())
	}
	return out
}
