package request

import (
	"strings"

	"ipfiling/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PaymentCallbackRequest is the gateway confirmation forwarded by the
// checkout UI, plus the optional attribution hints it collected.
//
// Amount is the gateway charge in minor units (cents). DeclaredPrice is the
// price the UI showed, in major units.
type PaymentCallbackRequest struct {
	OrderRef      string                 `json:"orderRef"`
	PaymentRef    string                 `json:"paymentRef"`
	Signature     string                 `json:"signature"`
	UserID        string                 `json:"userId,omitempty"`
	ServiceID     string                 `json:"serviceId,omitempty"`
	DeclaredPrice *decimal.Decimal       `json:"declaredPrice,omitempty"`
	Amount        *int64                 `json:"amount,omitempty"`
	FormData      map[string]interface{} `json:"formData,omitempty"`
	CartLines     []entities.CartLine    `json:"cartLines,omitempty"`
	Type          string                 `json:"type,omitempty"`
}

// ResolveUserID prefers the authenticated identity over the body.
func (r PaymentCallbackRequest) ResolveUserID(headerUserID string) string {
	if v := strings.TrimSpace(headerUserID); v != "" {
		return v
	}
	return strings.TrimSpace(r.UserID)
}
