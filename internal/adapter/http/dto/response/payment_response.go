package response

import (
	"time"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase"
)

type PaymentResponse struct {
	ID                    string                 `json:"id"`
	ProviderTransactionID string                 `json:"provider_transaction_id"`
	ProviderOrderID       string                 `json:"provider_order_id"`
	UserID                *string                `json:"user_id"`
	Amount                string                 `json:"amount"`
	Status                string                 `json:"status"`
	Date                  time.Time              `json:"date"`
	ServiceID             *string                `json:"service_id"`
	Type                  *string                `json:"type"`
	FormData              map[string]interface{} `json:"form_data,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                    p.ID,
		ProviderTransactionID: p.ProviderTransactionID,
		ProviderOrderID:       p.ProviderOrderID,
		UserID:                nullable(p.UserID),
		Amount:                p.Amount.StringFixed(2),
		Status:                string(p.Status),
		Date:                  p.Date,
		ServiceID:             nullable(p.ServiceID),
		Type:                  nullable(string(p.Type)),
		FormData:              p.FormData,
	}
}

type OrderResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ServiceID  *string   `json:"service_id"`
	CategoryID *string   `json:"category_id"`
	PaymentID  string    `json:"payment_id"`
	Type       *string   `json:"type"`
	LineIndex  int       `json:"line_index"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		UserID:     o.UserID,
		ServiceID:  nullable(o.ServiceID),
		CategoryID: nullable(o.CategoryID),
		PaymentID:  o.PaymentID,
		Type:       nullable(string(o.Type)),
		LineIndex:  o.LineIndex,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type NotifyResultResponse struct {
	Dispatched bool   `json:"dispatched"`
	Async      bool   `json:"async"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// PaymentVerificationResponse is returned for every callback whose
// signature verified, including ones whose capture failed.
type PaymentVerificationResponse struct {
	Success       bool                 `json:"success"`
	Captured      bool                 `json:"captured"`
	Payment       *PaymentResponse     `json:"payment"`
	CreatedOrders []OrderResponse      `json:"createdOrders"`
	NotifyResult  NotifyResultResponse `json:"notifyResult"`
	CaptureError  string               `json:"captureError,omitempty"`
	OrdersError   string               `json:"ordersError,omitempty"`
	Backfill      string               `json:"backfill,omitempty"`
	Unresolved    []string             `json:"unresolved,omitempty"`
}

func FromConfirmation(r usecase.ConfirmationResult) PaymentVerificationResponse {
	out := PaymentVerificationResponse{
		Success:       r.Success,
		Captured:      r.Captured,
		CreatedOrders: FromOrders(r.CreatedOrders),
		NotifyResult: NotifyResultResponse{
			Dispatched: r.Notify.Dispatched,
			Async:      r.Notify.Async,
			Success:    r.Notify.Success,
			Error:      r.Notify.Error,
		},
		CaptureError: r.CaptureError,
		OrdersError:  r.OrdersError,
		Backfill:     r.Backfill.Outcome,
	}
	if r.Payment != nil {
		p := FromPayment(*r.Payment)
		out.Payment = &p
	}
	a := r.Attribution
	if a.AmountSource == usecase.AmountSourceDefault {
		out.Unresolved = append(out.Unresolved, "amount")
	}
	if a.ServiceID == "" {
		out.Unresolved = append(out.Unresolved, "service")
	}
	if a.Type == "" {
		out.Unresolved = append(out.Unresolved, "type")
	}
	return out
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
