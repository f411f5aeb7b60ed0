package order

import (
	"time"

	"nazhan-shop/internal/cart"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusWaiting   Status = "waiting"
	StatusOnWay     Status = "onway"
	StatusCancelled Status = "cancelled"
)

// transitions is the fixed status machine. Reapplying the current status
// is always allowed (idempotent); cancelled is terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusWaiting, StatusOnWay, StatusCancelled},
	StatusWaiting:   {StatusOnWay, StatusCancelled},
	StatusOnWay:     {StatusWaiting, StatusCancelled},
	StatusCancelled: {},
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentBank   PaymentMethod = "bank"
	PaymentMobile PaymentMethod = "mobile"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentBank, PaymentMobile:
		return true
	}
	return false
}

// Label returns the display name for a payment method.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Cash on delivery"
	case PaymentBank:
		return "Bank transfer"
	case PaymentMobile:
		return "Mobile wallet"
	}
	return string(m)
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
}

// Order is a placed order. Items is an immutable snapshot of the cart at
// placement time; Subtotal, DeliveryFee and Total are fixed at creation
// and never recomputed, so later price changes do not propagate.
type Order struct {
	ID            string        `json:"id"`
	Number        string        `json:"orderNumber"`
	Customer      Customer      `json:"customer"`
	Items         []cart.Line   `json:"items"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Subtotal      int64         `json:"subtotal"`
	DeliveryFee   int64         `json:"deliveryFee"`
	Total         int64         `json:"total"`
	PlacedAt      time.Time     `json:"placedAt"`
	Status        Status        `json:"status"`
}
