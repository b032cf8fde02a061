package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the capture state of a payment.
//
// Rows are written as paid by the confirmation pipeline. The pending status
// exists for rows staged before the gateway confirms.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Payment is the canonical record of a confirmed gateway charge.
//
// Storage model (DynamoDB):
//   - PK: provider_transaction_id (one row per gateway charge)
//   - GSI (provider_order_id-index): provider_order_id
//
// Empty strings stand for null on UserID, ServiceID and Type.
type Payment struct {
	ID                    string          `json:"id"`
	ProviderTransactionID string          `json:"provider_transaction_id"`
	ProviderOrderID       string          `json:"provider_order_id"`
	UserID                string          `json:"user_id,omitempty"`
	Amount                decimal.Decimal `json:"amount"`
	Status                PaymentStatus   `json:"status"`
	Date                  time.Time       `json:"date"`
	ServiceID             string          `json:"service_id,omitempty"`
	Type                  AttributionType `json:"type,omitempty"`

	FormData map[string]interface{} `json:"form_data,omitempty"`
}

// HasOwner reports whether the payment is attributed to an account.
func (p Payment) HasOwner() bool {
	return p.UserID != ""
}
