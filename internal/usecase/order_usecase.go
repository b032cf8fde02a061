package usecase

import (
	"context"
	"errors"
	"strings"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// IOrderUseCase lets customers follow their orders and staff move them
// along. Status changes never go through fan-out.
type IOrderUseCase interface {
	ListMine(ctx context.Context, actor entities.Actor) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	repo   interfaces.IOrderRepository
	logger *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, logger *zap.Logger) *OrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUseCase{repo: repo, logger: logger}
}

func (u *OrderUseCase) ListMine(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if actor.UserID == "" {
		return nil, ErrUnauthenticated
	}
	return u.repo.ListByUserID(ctx, actor.UserID)
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}
	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.logger.Info("[order][usecase] status updated", zap.String("order_id", id), zap.String("status", string(status)))
	return updated, nil
}
