package memory

import (
	"context"
	"sort"
	"time"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"
)

// QuoteRepository applies the entities quote policies to the current row
// under the store lock.
type QuoteRepository struct {
	s *Store
}

var (
	_ interfaces.IQuoteRepository = (*QuoteRepository)(nil)
	_ interfaces.IQuoteHistory    = (*QuoteRepository)(nil)
)

func (r *QuoteRepository) Insert(_ context.Context, actor entities.Actor, q entities.Quote) (int64, error) {
	if !entities.CanInsertQuote(actor, q) {
		return 0, nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.quotes[q.ID]; exists {
		return 0, nil
	}
	r.s.quotes[q.ID] = q
	return 1, nil
}

func (r *QuoteRepository) Get(_ context.Context, actor entities.Actor, id string) (entities.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	q, ok := r.s.quotes[id]
	if !ok || !entities.CanReadQuote(actor, q) {
		return entities.Quote{}, nil
	}
	return q, nil
}

func (r *QuoteRepository) ListByUser(_ context.Context, actor entities.Actor, userID string) ([]entities.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []entities.Quote{}
	for _, q := range r.s.quotes {
		if q.UserID == userID && entities.CanReadQuote(actor, q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *QuoteRepository) Update(_ context.Context, actor entities.Actor, id string, patch entities.QuotePatch) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	q, ok := r.s.quotes[id]
	if !ok || !entities.CanWriteQuote(actor, q) {
		return 0, nil
	}
	q = patch.Apply(q)
	q.UpdatedAt = time.Now().UTC()
	r.s.quotes[id] = q
	return 1, nil
}

func (r *QuoteRepository) Delete(_ context.Context, actor entities.Actor, id string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	q, ok := r.s.quotes[id]
	if !ok || !entities.CanDeleteQuote(actor, q) {
		return 0, nil
	}
	delete(r.s.quotes, id)
	delete(r.s.items, id)
	return 1, nil
}

func (r *QuoteRepository) Finalize(_ context.Context, actor entities.Actor, id string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	q, ok := r.s.quotes[id]
	if !ok || !entities.CanFinalizeQuote(actor, q) {
		return 0, nil
	}
	now := time.Now().UTC()
	q.Status = entities.QuoteStatusFinalized
	q.FinalizedAt = &now
	q.UpdatedAt = now
	r.s.quotes[id] = q
	return 1, nil
}

func (r *QuoteRepository) LatestByUser(_ context.Context, userID string) (entities.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var latest entities.Quote
	for _, q := range r.s.quotes {
		if q.UserID != userID {
			continue
		}
		if latest.ID == "" || q.CreatedAt.After(latest.CreatedAt) {
			latest = q
		}
	}
	return latest, nil
}

// QuoteItemRepository checks the parent quote's current state on every
// call.
type QuoteItemRepository struct {
	s *Store
}

var _ interfaces.IQuoteItemRepository = (*QuoteItemRepository)(nil)

func (r *QuoteItemRepository) Insert(_ context.Context, actor entities.Actor, item entities.QuoteItem) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	parent, ok := r.s.quotes[item.QuoteID]
	if !ok || !entities.CanWriteQuoteItem(actor, parent) {
		return 0, nil
	}
	items := r.s.items[item.QuoteID]
	if items == nil {
		items = map[string]entities.QuoteItem{}
		r.s.items[item.QuoteID] = items
	}
	if _, exists := items[item.ID]; exists {
		return 0, nil
	}
	items[item.ID] = item
	return 1, nil
}

func (r *QuoteItemRepository) Update(_ context.Context, actor entities.Actor, item entities.QuoteItem) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	parent, ok := r.s.quotes[item.QuoteID]
	if !ok || !entities.CanWriteQuoteItem(actor, parent) {
		return 0, nil
	}
	cur, ok := r.s.items[item.QuoteID][item.ID]
	if !ok {
		return 0, nil
	}
	item.CreatedAt = cur.CreatedAt
	r.s.items[item.QuoteID][item.ID] = item
	return 1, nil
}

func (r *QuoteItemRepository) Delete(_ context.Context, actor entities.Actor, quoteID, itemID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	parent, ok := r.s.quotes[quoteID]
	if !ok || !entities.CanDeleteQuoteItem(actor, parent) {
		return 0, nil
	}
	if _, ok := r.s.items[quoteID][itemID]; !ok {
		return 0, nil
	}
	delete(r.s.items[quoteID], itemID)
	return 1, nil
}

func (r *QuoteItemRepository) ListByQuote(_ context.Context, actor entities.Actor, quoteID string) ([]entities.QuoteItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []entities.QuoteItem{}
	parent, ok := r.s.quotes[quoteID]
	if !ok || !entities.CanReadQuoteItem(actor, parent) {
		return out, nil
	}
	for _, it := range r.s.items[quoteID] {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
