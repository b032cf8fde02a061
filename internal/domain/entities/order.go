package entities

import "time"

// OrderStatus tracks back-office progress on a filing order.
type OrderStatus string

const (
	OrderStatusReceived   OrderStatus = "received"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusReceived, OrderStatusInProgress, OrderStatusCompleted:
		return true
	}
	return false
}

// Order is one durable filing order produced from a confirmed payment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (payment_id-index): payment_id
//   - GSI (user_id-index): user_id
//
// LineIndex is the cart position the order was generated from; the single
// item fallback uses 0.
type Order struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	ServiceID  string          `json:"service_id,omitempty"`
	CategoryID string          `json:"category_id,omitempty"`
	PaymentID  string          `json:"payment_id"`
	Type       AttributionType `json:"type,omitempty"`
	LineIndex  int             `json:"line_index"`
	Status     OrderStatus     `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
