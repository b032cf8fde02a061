package memory

import (
	"context"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"
)

type PaymentRepository struct {
	s *Store
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func (r *PaymentRepository) UpdateByProviderTransactionID(_ context.Context, p entities.Payment) (entities.Payment, bool, error) {
	if !p.Type.Valid() {
		return entities.Payment{}, false, interfaces.ErrConstraintViolation
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.payments[p.ProviderTransactionID]
	if !ok {
		return entities.Payment{}, false, nil
	}
	cur.ProviderOrderID = p.ProviderOrderID
	cur.Amount = p.Amount
	cur.Status = p.Status
	if cur.UserID == "" && p.UserID != "" {
		cur.UserID = p.UserID
	}
	if p.ServiceID != "" {
		cur.ServiceID = p.ServiceID
	}
	if p.Type != "" {
		cur.Type = p.Type
	}
	if p.FormData != nil {
		cur.FormData = p.FormData
	}
	r.s.payments[p.ProviderTransactionID] = cur
	return cur, true, nil
}

func (r *PaymentRepository) Insert(_ context.Context, p entities.Payment) (entities.Payment, error) {
	if !p.Type.Valid() {
		return entities.Payment{}, interfaces.ErrConstraintViolation
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.payments[p.ProviderTransactionID]; exists {
		return entities.Payment{}, interfaces.ErrUniqueViolation
	}
	r.s.payments[p.ProviderTransactionID] = p
	return p, nil
}

func (r *PaymentRepository) GetByProviderTransactionID(_ context.Context, providerTransactionID string) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.payments[providerTransactionID], nil
}

func (r *PaymentRepository) FindByProviderOrderID(_ context.Context, providerOrderID string) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var latest entities.Payment
	for _, p := range r.s.payments {
		if p.ProviderOrderID != providerOrderID {
			continue
		}
		if latest.ID == "" || p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

func (r *PaymentRepository) AssignUser(_ context.Context, providerTransactionID, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.payments[providerTransactionID]
	if !ok || cur.UserID != "" {
		return false, nil
	}
	cur.UserID = userID
	r.s.payments[providerTransactionID] = cur
	return true, nil
}

// Count returns the number of payment rows.
func (r *PaymentRepository) Count() int {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.payments)
}
