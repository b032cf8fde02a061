package interfaces

import (
	"context"
	"ipfiling/internal/domain/entities"
)

// PaymentNotification is the confirmation message handed to the notifier.
type PaymentNotification struct {
	PaymentID string           `json:"paymentId"`
	Payment   entities.Payment `json:"paymentRow"`
}

// NotifyResult is the outcome reported by a notifier.
type NotifyResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// INotifier sends payment confirmation messages.
type INotifier interface {
	Notify(ctx context.Context, n PaymentNotification) NotifyResult
}
