package entities

import "github.com/shopspring/decimal"

// CartLine is one purchased service as submitted by the checkout UI.
//
// Service carries the display name; lines may reference a service by id,
// by name, or both.
type CartLine struct {
	ServiceID string           `json:"serviceId,omitempty"`
	Service   string           `json:"service,omitempty"`
	Type      string           `json:"type,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}
