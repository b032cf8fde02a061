package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"
)

type OrderRepository struct {
	s *Store
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) CreateMany(_ context.Context, orders []entities.Order) ([]entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	created := make([]entities.Order, 0, len(orders))
	var errs []error
	for _, o := range orders {
		if !o.Type.Valid() {
			errs = append(errs, fmt.Errorf("order %s: %w", o.ID, interfaces.ErrConstraintViolation))
			continue
		}
		if _, exists := r.s.orders[o.ID]; exists {
			continue
		}
		r.s.orders[o.ID] = o
		created = append(created, o)
	}
	return created, errors.Join(errs...)
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.orders[id], nil
}

func (r *OrderRepository) ListByPaymentID(_ context.Context, paymentID string) ([]entities.Order, error) {
	return r.filter(func(o entities.Order) bool { return o.PaymentID == paymentID }), nil
}

func (r *OrderRepository) ListByUserID(_ context.Context, userID string) ([]entities.Order, error) {
	return r.filter(func(o entities.Order) bool { return o.UserID == userID }), nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	r.s.orders[id] = o
	return o, nil
}

func (r *OrderRepository) filter(keep func(entities.Order) bool) []entities.Order {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []entities.Order{}
	for _, o := range r.s.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	sortOrders(out)
	return out
}
