// Package memory is an in-process store with the same constraints and row
// policies as the DynamoDB repositories. It backs STORAGE_BACKEND=memory
// and the pipeline tests.
package memory

import (
	"sort"
	"strings"
	"sync"

	"ipfiling/internal/domain/entities"
)

// Store holds every table behind one mutex, so each repository call is
// atomic the way a single conditional write is.
type Store struct {
	mu       sync.Mutex
	payments map[string]entities.Payment // by provider transaction id
	orders   map[string]entities.Order
	quotes   map[string]entities.Quote
	items    map[string]map[string]entities.QuoteItem // quote id -> item id
	services map[string]entities.Service
	accounts map[string]entities.Account
}

func NewStore() *Store {
	return &Store{
		payments: map[string]entities.Payment{},
		orders:   map[string]entities.Order{},
		quotes:   map[string]entities.Quote{},
		items:    map[string]map[string]entities.QuoteItem{},
		services: map[string]entities.Service{},
		accounts: map[string]entities.Account{},
	}
}

func (s *Store) Payments() *PaymentRepository     { return &PaymentRepository{s: s} }
func (s *Store) Orders() *OrderRepository         { return &OrderRepository{s: s} }
func (s *Store) Quotes() *QuoteRepository         { return &QuoteRepository{s: s} }
func (s *Store) QuoteItems() *QuoteItemRepository { return &QuoteItemRepository{s: s} }
func (s *Store) Catalog() *CatalogRepository      { return &CatalogRepository{s: s} }
func (s *Store) Accounts() *AccountRepository     { return &AccountRepository{s: s} }

// SeedServices adds catalog entries.
func (s *Store) SeedServices(services ...entities.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range services {
		s.services[svc.ID] = svc
	}
}

// SeedAccounts adds customer accounts.
func (s *Store) SeedAccounts(accounts ...entities.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range accounts {
		a.Email = strings.ToLower(strings.TrimSpace(a.Email))
		s.accounts[a.ID] = a
	}
}

func sortOrders(orders []entities.Order) {
	sort.Slice(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.PaymentID != b.PaymentID {
			return a.PaymentID < b.PaymentID
		}
		return a.LineIndex < b.LineIndex
	})
}
