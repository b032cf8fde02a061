package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a price quotation.
//
// draft is the initial state. finalized is terminal and is reached only
// through the privileged back-office path.
type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusFinalized QuoteStatus = "finalized"
)

// Quote is a customer price quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-created_at-index): user_id, created_at
type Quote struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	ServiceID       string          `json:"service_id,omitempty"`
	ApplicationType string          `json:"application_type,omitempty"`
	Status          QuoteStatus     `json:"status"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Currency        string          `json:"currency"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	FinalizedAt     *time.Time      `json:"finalized_at,omitempty"`
}

// IsDraft reports whether the quote is still editable by its owner.
func (q Quote) IsDraft() bool {
	return q.Status == QuoteStatusDraft
}

// QuotePatch carries the owner-editable fields of a quote. Nil fields are
// left untouched.
type QuotePatch struct {
	ServiceID       *string
	ApplicationType *string
	Subtotal        *decimal.Decimal
	Currency        *string
}

// Empty reports whether the patch changes nothing.
func (p QuotePatch) Empty() bool {
	return p.ServiceID == nil && p.ApplicationType == nil && p.Subtotal == nil && p.Currency == nil
}

// Apply returns q with the patch fields set.
func (p QuotePatch) Apply(q Quote) Quote {
	if p.ServiceID != nil {
		q.ServiceID = *p.ServiceID
	}
	if p.ApplicationType != nil {
		q.ApplicationType = *p.ApplicationType
	}
	if p.Subtotal != nil {
		q.Subtotal = *p.Subtotal
	}
	if p.Currency != nil {
		q.Currency = *p.Currency
	}
	return q
}

// QuoteItem is one priced line of a quote.
//
// Storage model (DynamoDB):
//   - PK: quote_id
//   - SK: id
type QuoteItem struct {
	ID         string          `json:"id"`
	QuoteID    string          `json:"quote_id"`
	Key        string          `json:"key"`
	Label      string          `json:"label"`
	Unit       string          `json:"unit,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitAmount decimal.Decimal `json:"unit_amount"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
