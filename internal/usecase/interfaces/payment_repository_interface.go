package interfaces

import (
	"context"
	"ipfiling/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for Payment.
//
// The confirmation pipeline relies on:
//   - UpdateByProviderTransactionID: conditional update; found=false when no
//     row exists for the transaction id. ID and Date are never overwritten.
//   - Insert: conditional insert; ErrUniqueViolation when the transaction id
//     is already taken.
//   - Both return ErrConstraintViolation when Type is not canonical.
type IPaymentRepository interface {
	UpdateByProviderTransactionID(ctx context.Context, p entities.Payment) (updated entities.Payment, found bool, err error)
	Insert(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByProviderTransactionID(ctx context.Context, providerTransactionID string) (entities.Payment, error)
	FindByProviderOrderID(ctx context.Context, providerOrderID string) (entities.Payment, error)
	AssignUser(ctx context.Context, providerTransactionID, userID string) (bool, error)
}
