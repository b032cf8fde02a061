package response

import (
	"time"

	"ipfiling/internal/domain/entities"
)

type QuoteResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	ServiceID       *string    `json:"service_id"`
	ApplicationType *string    `json:"application_type"`
	Status          string     `json:"status"`
	Subtotal        string     `json:"subtotal"`
	Currency        string     `json:"currency"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	FinalizedAt     *time.Time `json:"finalized_at,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		UserID:          q.UserID,
		ServiceID:       nullable(q.ServiceID),
		ApplicationType: nullable(q.ApplicationType),
		Status:          string(q.Status),
		Subtotal:        q.Subtotal.StringFixed(2),
		Currency:        q.Currency,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
		FinalizedAt:     q.FinalizedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

type QuoteItemResponse struct {
	ID         string    `json:"id"`
	QuoteID    string    `json:"quote_id"`
	Key        string    `json:"key"`
	Label      string    `json:"label"`
	Unit       string    `json:"unit,omitempty"`
	Quantity   int       `json:"quantity"`
	UnitAmount string    `json:"unit_amount"`
	Amount     string    `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromQuoteItem(it entities.QuoteItem) QuoteItemResponse {
	return QuoteItemResponse{
		ID:         it.ID,
		QuoteID:    it.QuoteID,
		Key:        it.Key,
		Label:      it.Label,
		Unit:       it.Unit,
		Quantity:   it.Quantity,
		UnitAmount: it.UnitAmount.StringFixed(2),
		Amount:     it.Amount.StringFixed(2),
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
}

func FromQuoteItems(items []entities.QuoteItem) []QuoteItemResponse {
	out := make([]QuoteItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromQuoteItem(it))
	}
	return out
}

// RowsAffectedResponse answers policy-guarded writes. Zero rows is a
// success response: the write was denied or matched nothing.
type RowsAffectedResponse struct {
	RowsAffected int64 `json:"rows_affected"`
}

type QuoteCreatedResponse struct {
	Quote        *QuoteResponse `json:"quote"`
	RowsAffected int64          `json:"rows_affected"`
}

type QuoteItemCreatedResponse struct {
	Item         *QuoteItemResponse `json:"item"`
	RowsAffected int64              `json:"rows_affected"`
}
