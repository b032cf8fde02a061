package request

import (
	"ipfiling/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CreateQuoteRequest opens a draft. UserID is only read on the admin path.
type CreateQuoteRequest struct {
	UserID          string `json:"user_id"`
	ServiceID       string `json:"service_id"`
	ApplicationType string `json:"application_type"`
	Currency        string `json:"currency"`
}

type UpdateQuoteRequest struct {
	ServiceID       *string          `json:"service_id"`
	ApplicationType *string          `json:"application_type"`
	Subtotal        *decimal.Decimal `json:"subtotal"`
	Currency        *string          `json:"currency"`
}

func (r UpdateQuoteRequest) ToPatch() entities.QuotePatch {
	return entities.QuotePatch{
		ServiceID:       r.ServiceID,
		ApplicationType: r.ApplicationType,
		Subtotal:        r.Subtotal,
		Currency:        r.Currency,
	}
}

type AddQuoteItemRequest struct {
	Key        string           `json:"key" binding:"required"`
	Label      string           `json:"label"`
	Unit       string           `json:"unit"`
	Quantity   int              `json:"quantity"`
	UnitAmount decimal.Decimal  `json:"unit_amount"`
	Amount     *decimal.Decimal `json:"amount"`
}

type UpdateQuoteItemRequest struct {
	Label      *string          `json:"label"`
	Unit       *string          `json:"unit"`
	Quantity   *int             `json:"quantity"`
	UnitAmount *decimal.Decimal `json:"unit_amount"`
	Amount     *decimal.Decimal `json:"amount"`
}

// UpdateOrderStatusRequest moves an order along the back-office workflow.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
