package interfaces

import (
	"context"
	"ipfiling/internal/domain/entities"
)

// IOrderRepository abstracts persistence for Order.
//
// CreateMany is append-only: rows whose id already exists are skipped and
// left untouched. It returns the rows it actually wrote.
type IOrderRepository interface {
	CreateMany(ctx context.Context, orders []entities.Order) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByPaymentID(ctx context.Context, paymentID string) ([]entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
