package application

import (
	"fmt"

	"github.com/tableside/tableside/internal/domain"
)

// CheckoutResult is the payload returned on successful checkout.
type CheckoutResult struct {
	Order   domain.Order `json:"order"`
	Success bool         `json:"success"`
	Message string       `json:"message"`
}

// CheckoutService coordinates the cart-to-order transition and answers
// order queries.
type CheckoutService struct {
	sessions domain.SessionStore
	orders   domain.OrderLedger
}

func NewCheckoutService(sessions domain.SessionStore, orders domain.OrderLedger) *CheckoutService {
	return &CheckoutService{sessions: sessions, orders: orders}
}

// Checkout snapshots the session's cart, creates a confirmed order, and
// clears the cart. All three steps run inside one session Update, so no
// concurrent operation on the same session can observe an order without
// the cleared cart or vice versa. An empty cart refuses checkout before
// anything is created.
func (s *CheckoutService) Checkout(sessionID string, customer map[string]any, paymentMethod string) (CheckoutResult, error) {
	var order domain.Order
	_, err := s.sessions.Update(sessionID, func(sess *domain.Session) error {
		if len(sess.Cart) == 0 {
			return domain.ErrEmptyCart
		}
		order = s.orders.Create(sess.Cart, customer, paymentMethod)
		sess.Cart = domain.Cart{}
		return nil
	})
	if err != nil {
		return CheckoutResult{}, err
	}
	return CheckoutResult{
		Order:   order,
		Success: true,
		Message: "Order placed successfully",
	}, nil
}

// OrderStatus returns the order with the given id.
func (s *CheckoutService) OrderStatus(orderID string) (domain.Order, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %q: %w", orderID, err)
	}
	return order, nil
}

// ListOrders returns a point-in-time snapshot of all orders.
func (s *CheckoutService) ListOrders() []domain.Order {
	return s.orders.List()
}
