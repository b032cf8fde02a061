package memory

import (
	"context"
	"sort"
	"strings"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"
)

type CatalogRepository struct {
	s *Store
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func (r *CatalogRepository) ListServices(_ context.Context) ([]entities.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]entities.Service, 0, len(r.s.services))
	for _, svc := range r.s.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CatalogRepository) GetService(_ context.Context, id string) (entities.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.services[id], nil
}

type AccountRepository struct {
	s *Store
}

var _ interfaces.IAccountRepository = (*AccountRepository)(nil)

func (r *AccountRepository) FindByEmail(_ context.Context, email string) (entities.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return entities.Account{}, nil
}
