package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository_Constraints(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Payments()

	p := entities.Payment{ID: "pay-1", ProviderTransactionID: "p1", ProviderOrderID: "o1", Status: entities.PaymentStatusPaid}
	_, err := repo.Insert(ctx, p)
	require.NoError(t, err)

	_, err = repo.Insert(ctx, entities.Payment{ID: "pay-2", ProviderTransactionID: "p1"})
	assert.True(t, errors.Is(err, interfaces.ErrUniqueViolation))

	_, err = repo.Insert(ctx, entities.Payment{ID: "pay-3", ProviderTransactionID: "p3", Type: "logo"})
	assert.True(t, errors.Is(err, interfaces.ErrConstraintViolation))

	_, _, err = repo.UpdateByProviderTransactionID(ctx, entities.Payment{ProviderTransactionID: "p1", Type: "logo"})
	assert.True(t, errors.Is(err, interfaces.ErrConstraintViolation))

	_, found, err := repo.UpdateByProviderTransactionID(ctx, entities.Payment{ProviderTransactionID: "missing"})
	require.NoError(t, err)
	assert.False(t, found)

	updated, found, err := repo.UpdateByProviderTransactionID(ctx, entities.Payment{ID: "ignored", ProviderTransactionID: "p1", ProviderOrderID: "o1", ServiceID: "A"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "pay-1", updated.ID, "id is never overwritten")
	assert.Equal(t, "A", updated.ServiceID)
	assert.Equal(t, 1, repo.Count())
}

func TestPaymentRepository_ConcurrentInsertKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Payments()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var inserted, conflicts int
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Insert(ctx, entities.Payment{ID: "x", ProviderTransactionID: "p1"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				inserted++
			} else if errors.Is(err, interfaces.ErrUniqueViolation) {
				conflicts++
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, inserted)
	assert.Equal(t, 15, conflicts)
	assert.Equal(t, 1, repo.Count())
}

func TestPaymentRepository_AssignUserOnlyWhenOwnerless(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Payments()
	_, err := repo.Insert(ctx, entities.Payment{ID: "pay-1", ProviderTransactionID: "p1"})
	require.NoError(t, err)

	ok, err := repo.AssignUser(ctx, "p1", "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AssignUser(ctx, "p1", "u2")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.AssignUser(ctx, "missing", "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	got, _ := repo.GetByProviderTransactionID(ctx, "p1")
	assert.Equal(t, "u1", got.UserID)

	updated, found, err := repo.UpdateByProviderTransactionID(ctx, entities.Payment{ProviderTransactionID: "p1", UserID: "u2"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "u1", updated.UserID, "update never reassigns the owner")
}

func TestPaymentRepository_FindByProviderOrderIDLatest(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Payments()
	now := time.Now()
	_, _ = repo.Insert(ctx, entities.Payment{ID: "old", ProviderTransactionID: "p1", ProviderOrderID: "o1", Date: now.Add(-time.Minute)})
	_, _ = repo.Insert(ctx, entities.Payment{ID: "new", ProviderTransactionID: "p2", ProviderOrderID: "o1", Date: now})

	got, err := repo.FindByProviderOrderID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)

	got, err = repo.FindByProviderOrderID(ctx, "o9")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestOrderRepository_CreateManyAppendOnly(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Orders()

	first := entities.Order{ID: "o1", PaymentID: "pay-1", UserID: "u1", Status: entities.OrderStatusReceived}
	created, err := repo.CreateMany(ctx, []entities.Order{first})
	require.NoError(t, err)
	require.Len(t, created, 1)

	changed := first
	changed.UserID = "u2"
	created, err = repo.CreateMany(ctx, []entities.Order{
		changed,
		{ID: "o2", PaymentID: "pay-1", UserID: "u1", Type: "logo"},
		{ID: "o3", PaymentID: "pay-1", UserID: "u1", LineIndex: 2},
	})
	assert.True(t, errors.Is(err, interfaces.ErrConstraintViolation))
	require.Len(t, created, 1)
	assert.Equal(t, "o3", created[0].ID)

	got, _ := repo.GetByID(ctx, "o1")
	assert.Equal(t, "u1", got.UserID, "existing rows are never rewritten")

	byPayment, _ := repo.ListByPaymentID(ctx, "pay-1")
	assert.Len(t, byPayment, 2)

	updated, err := repo.UpdateStatus(ctx, "o1", entities.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusCompleted, updated.Status)

	missing, err := repo.UpdateStatus(ctx, "nope", entities.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestQuoteRepositories_Policies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	quotes, items := s.Quotes(), s.QuoteItems()
	owner := entities.Actor{UserID: "u1"}

	n, err := quotes.Insert(ctx, owner, entities.Quote{ID: "q1", UserID: "u2", Status: entities.QuoteStatusDraft})
	require.NoError(t, err)
	assert.EqualValues(t, 0, n, "owners cannot insert for others")

	n, _ = quotes.Insert(ctx, owner, entities.Quote{ID: "q1", UserID: "u1", Status: entities.QuoteStatusDraft, CreatedAt: time.Now()})
	require.EqualValues(t, 1, n)

	n, _ = items.Insert(ctx, owner, entities.QuoteItem{ID: "i1", QuoteID: "q1", Key: "filing", CreatedAt: time.Now()})
	require.EqualValues(t, 1, n)

	n, _ = items.Delete(ctx, owner, "q1", "i1")
	assert.EqualValues(t, 0, n, "owners cannot delete items")

	n, _ = quotes.Finalize(ctx, owner, "q1")
	assert.EqualValues(t, 0, n)
	n, _ = quotes.Finalize(ctx, entities.SystemActor, "q1")
	require.EqualValues(t, 1, n)

	n, _ = items.Update(ctx, owner, entities.QuoteItem{ID: "i1", QuoteID: "q1", Key: "changed"})
	assert.EqualValues(t, 0, n, "finalized parent freezes items")

	n, _ = items.Update(ctx, entities.SystemActor, entities.QuoteItem{ID: "i1", QuoteID: "q1", Key: "changed"})
	assert.EqualValues(t, 1, n)

	list, _ := items.ListByQuote(ctx, entities.Actor{UserID: "u2"}, "q1")
	assert.Empty(t, list)

	list, _ = items.ListByQuote(ctx, owner, "q1")
	require.Len(t, list, 1)
	assert.False(t, list[0].CreatedAt.IsZero(), "update keeps created_at")

	n, _ = quotes.Delete(ctx, entities.SystemActor, "q1")
	require.EqualValues(t, 1, n)
	list, _ = items.ListByQuote(ctx, entities.SystemActor, "q1")
	assert.Empty(t, list)
}

func TestAccountRepository_FindByEmailCaseInsensitive(t *testing.T) {
	s := NewStore()
	s.SeedAccounts(entities.Account{ID: "u1", Email: " Ana@Example.COM "})

	got, err := s.Accounts().FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}
