package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ipfiling/internal/adapter/persistence/memory"
	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"
	mock_interfaces "ipfiling/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newFanOutStore() *memory.Store {
	s := memory.NewStore()
	s.SeedServices(
		entities.Service{ID: "A", Name: "Trademark Search", CategoryID: "cat-tm"},
		entities.Service{ID: "B", Name: "Patent Filing", CategoryID: "cat-pt"},
	)
	return s
}

func TestOrderFanOut_Generate(t *testing.T) {
	paid := entities.Payment{ID: "pay-1", ProviderTransactionID: "p1", UserID: "u1"}

	t.Run("payment must be persisted", func(t *testing.T) {
		g := NewOrderFanOut(nil, nil, nil, nil, nil, nil)
		_, err := g.Generate(context.Background(), FanOutInput{UserID: "u1"})
		if !errors.Is(err, ErrPaymentNotPersisted) {
			t.Fatalf("expected ErrPaymentNotPersisted, got %v", err)
		}
	})

	t.Run("owner required", func(t *testing.T) {
		g := NewOrderFanOut(nil, nil, nil, nil, nil, nil)
		_, err := g.Generate(context.Background(), FanOutInput{Payment: paid, UserID: " "})
		if !errors.Is(err, ErrOrderOwnerMissing) {
			t.Fatalf("expected ErrOrderOwnerMissing, got %v", err)
		}
	})

	t.Run("one order per cart line", func(t *testing.T) {
		s := newFanOutStore()
		g := NewOrderFanOut(s.Orders(), s.Catalog(), s.Quotes(), staticPricing{"tm": "trademark"}, nil, nil)

		created, err := g.Generate(context.Background(), FanOutInput{
			Payment: paid,
			UserID:  "u1",
			CartLines: []entities.CartLine{
				{ServiceID: "A", Type: "tm"},
				{Service: "Patent Filing", Type: "patent"},
				{ServiceID: "missing", Type: "copyright"},
			},
		})
		require.NoError(t, err)
		require.Len(t, created, 3)

		assert.Equal(t, "A", created[0].ServiceID)
		assert.Equal(t, "cat-tm", created[0].CategoryID)
		assert.Equal(t, entities.AttributionTypeTrademark, created[0].Type)
		assert.Equal(t, "B", created[1].ServiceID)
		assert.Equal(t, entities.AttributionTypePatent, created[1].Type)
		assert.Empty(t, created[2].ServiceID)
		assert.Equal(t, entities.AttributionTypeCopyright, created[2].Type)

		for i, o := range created {
			assert.Equal(t, OrderID("pay-1", i), o.ID)
			assert.Equal(t, i, o.LineIndex)
			assert.Equal(t, "u1", o.UserID)
			assert.Equal(t, entities.OrderStatusReceived, o.Status)
		}
	})

	t.Run("rerun writes nothing new", func(t *testing.T) {
		s := newFanOutStore()
		g := NewOrderFanOut(s.Orders(), s.Catalog(), nil, nil, nil, nil)
		in := FanOutInput{Payment: paid, UserID: "u1", CartLines: []entities.CartLine{{ServiceID: "A"}, {ServiceID: "B"}}}

		first, err := g.Generate(context.Background(), in)
		require.NoError(t, err)
		require.Len(t, first, 2)

		second, err := g.Generate(context.Background(), in)
		require.NoError(t, err)
		assert.Empty(t, second)

		all, _ := s.Orders().ListByPaymentID(context.Background(), "pay-1")
		assert.Len(t, all, 2)
	})

	t.Run("unknown line type dropped", func(t *testing.T) {
		s := newFanOutStore()
		g := NewOrderFanOut(s.Orders(), s.Catalog(), nil, nil, nil, nil)

		created, err := g.Generate(context.Background(), FanOutInput{
			Payment:   paid,
			UserID:    "u1",
			CartLines: []entities.CartLine{{ServiceID: "A", Type: "logo"}},
		})
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Empty(t, created[0].Type)
	})

	t.Run("unknown line type keeps payment type", func(t *testing.T) {
		s := newFanOutStore()
		g := NewOrderFanOut(s.Orders(), s.Catalog(), nil, staticPricing{"tm-basic": "trademark"}, nil, nil)

		p := paid
		p.Type = entities.AttributionTypeTrademark
		created, err := g.Generate(context.Background(), FanOutInput{
			Payment: p,
			UserID:  "u1",
			CartLines: []entities.CartLine{
				{ServiceID: "A", Type: "unknown-key"},
				{ServiceID: "B", Type: "patent"},
			},
		})
		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.Equal(t, entities.AttributionTypeTrademark, created[0].Type)
		assert.Equal(t, entities.AttributionTypePatent, created[1].Type)
	})

	t.Run("single line uses latest quote", func(t *testing.T) {
		s := newFanOutStore()
		ctx := context.Background()
		older := entities.Quote{ID: "q-old", UserID: "u1", ServiceID: "A", ApplicationType: "trademark", Status: entities.QuoteStatusDraft, CreatedAt: time.Now().Add(-time.Hour)}
		newer := entities.Quote{ID: "q-new", UserID: "u1", ServiceID: "B", ApplicationType: "patent", Status: entities.QuoteStatusDraft, CreatedAt: time.Now()}
		for _, q := range []entities.Quote{older, newer} {
			n, err := s.Quotes().Insert(ctx, entities.SystemActor, q)
			require.NoError(t, err)
			require.EqualValues(t, 1, n)
		}

		g := NewOrderFanOut(s.Orders(), s.Catalog(), s.Quotes(), nil, nil, nil)
		created, err := g.Generate(ctx, FanOutInput{Payment: paid, UserID: "u1"})
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, OrderID("pay-1", 0), created[0].ID)
		assert.Equal(t, "B", created[0].ServiceID)
		assert.Equal(t, "cat-pt", created[0].CategoryID)
		assert.Equal(t, entities.AttributionTypePatent, created[0].Type)
	})

	t.Run("single line keeps payment attribution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteHistory(ctrl)
		m := mock_interfaces.NewMockIReconciliationMetrics(ctrl)

		p := paid
		p.ServiceID = "A"
		p.Type = entities.AttributionTypeDesign

		catalog.EXPECT().GetService(gomock.Any(), "A").Return(entities.Service{ID: "A", CategoryID: "cat-tm"}, nil)
		orders.EXPECT().CreateMany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in []entities.Order) ([]entities.Order, error) {
				if len(in) != 1 || in[0].ServiceID != "A" || in[0].Type != entities.AttributionTypeDesign {
					t.Fatalf("unexpected orders: %+v", in)
				}
				return in, nil
			},
		)
		m.EXPECT().OrdersCreated(1)

		g := NewOrderFanOut(orders, catalog, quotes, nil, m, nil)
		_, err := g.Generate(context.Background(), FanOutInput{Payment: p, UserID: "u1"})
		require.NoError(t, err)
	})

	t.Run("partial create reports error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)

		orders.EXPECT().CreateMany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in []entities.Order) ([]entities.Order, error) {
				return in[:1], interfaces.ErrConstraintViolation
			},
		)

		g := NewOrderFanOut(orders, nil, nil, nil, nil, nil)
		created, err := g.Generate(context.Background(), FanOutInput{
			Payment:   paid,
			UserID:    "u1",
			CartLines: []entities.CartLine{{Service: "x"}, {Service: "y"}},
		})
		if !errors.Is(err, interfaces.ErrConstraintViolation) {
			t.Fatalf("expected constraint violation, got %v", err)
		}
		assert.Len(t, created, 1)
	})
}

func TestOrderID_Deterministic(t *testing.T) {
	assert.Equal(t, OrderID("pay-1", 0), OrderID("pay-1", 0))
	assert.NotEqual(t, OrderID("pay-1", 0), OrderID("pay-1", 1))
	assert.NotEqual(t, OrderID("pay-1", 0), OrderID("pay-2", 0))
}
