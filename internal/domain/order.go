package domain

import "time"

// OrderStatusConfirmed is the only status the ledger assigns; order
// lifecycle beyond creation is not modeled.
const OrderStatusConfirmed = "confirmed"

// Payment handling is an always-approved stub.
const (
	DefaultPaymentMethod  = "credit_card"
	PaymentStatusApproved = "approved"
)

// PaymentInfo records the payment stub attached to an order.
type PaymentInfo struct {
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

// Order is the immutable record of a completed checkout. Items and Total
// are frozen at creation and never change afterwards.
type Order struct {
	ID           string         `json:"order_id"`
	Items        Cart           `json:"items"`
	Total        float64        `json:"total"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	CustomerInfo map[string]any `json:"customer_info"`
	PaymentInfo  PaymentInfo    `json:"payment_info"`
}

// NewOrder builds a confirmed order from a cart snapshot. The order owns
// its own copy of the items, independent of the originating cart. An
// empty paymentMethod falls back to DefaultPaymentMethod.
func NewOrder(items Cart, customer map[string]any, paymentMethod string) Order {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}
	if customer == nil {
		customer = map[string]any{}
	}
	owned := items.Clone()
	return Order{
		ID:           NewOrderID(),
		Items:        owned,
		Total:        owned.Total(),
		Status:       OrderStatusConfirmed,
		CreatedAt:    time.Now(),
		CustomerInfo: customer,
		PaymentInfo: PaymentInfo{
			Method:        paymentMethod,
			Status:        PaymentStatusApproved,
			TransactionID: NewTransactionID(),
		},
	}
}

// Snapshot returns a copy whose items share no memory with the receiver.
func (o Order) Snapshot() Order {
	o.Items = o.Items.Clone()
	return o
}
