package application

import (
	"fmt"

	"github.com/tableside/tableside/internal/domain"
)

// CartView is the cart payload returned by every cart operation.
type CartView struct {
	Cart  domain.Cart `json:"cart"`
	Total float64     `json:"total"`
}

// NewCartResult is returned by CreateSession.
type NewCartResult struct {
	SessionID string      `json:"session_id"`
	Cart      domain.Cart `json:"cart"`
}

// CartService implements the session and cart operations. All mutations
// go through the session store's Update, so concurrent calls on the same
// session serialize while different sessions proceed in parallel.
type CartService struct {
	sessions domain.SessionStore
	catalog  domain.MenuCatalog
}

func NewCartService(sessions domain.SessionStore, catalog domain.MenuCatalog) *CartService {
	return &CartService{sessions: sessions, catalog: catalog}
}

// CreateSession registers a new session with an empty cart.
func (s *CartService) CreateSession() NewCartResult {
	sess := s.sessions.Create()
	return NewCartResult{SessionID: sess.ID, Cart: sess.Cart}
}

// AddItem adds quantity of the item to the session's cart. A repeated
// add for the same item increments the existing line; the unit price
// captured at first insertion stands.
func (s *CartService) AddItem(sessionID, itemID string, quantity int) (CartView, error) {
	if quantity <= 0 {
		return CartView{}, fmt.Errorf("quantity %d: %w", quantity, domain.ErrInvalidQuantity)
	}
	item, err := s.catalog.ItemByID(itemID)
	if err != nil {
		return CartView{}, fmt.Errorf("item %q: %w", itemID, err)
	}

	sess, err := s.sessions.Update(sessionID, func(sess *domain.Session) error {
		sess.Cart = sess.Cart.AddLine(item, quantity)
		return nil
	})
	if err != nil {
		return CartView{}, err
	}
	return CartView{Cart: sess.Cart, Total: sess.Cart.Total()}, nil
}

// RemoveItem removes the item's line from the session's cart. Removing
// an item that is not in the cart is a no-op, not an error.
func (s *CartService) RemoveItem(sessionID, itemID string) (CartView, error) {
	sess, err := s.sessions.Update(sessionID, func(sess *domain.Session) error {
		sess.Cart = sess.Cart.RemoveLine(itemID)
		return nil
	})
	if err != nil {
		return CartView{}, err
	}
	return CartView{Cart: sess.Cart, Total: sess.Cart.Total()}, nil
}

// GetCart returns the session's current cart and total.
func (s *CartService) GetCart(sessionID string) (CartView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return CartView{}, err
	}
	return CartView{Cart: sess.Cart, Total: sess.Cart.Total()}, nil
}
