package usecase

import (
	"context"
	"errors"
	"testing"

	"ipfiling/internal/adapter/persistence/memory"
	"ipfiling/internal/domain/entities"
	mock_interfaces "ipfiling/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestExtractEmail(t *testing.T) {
	cases := []struct {
		name string
		form map[string]interface{}
		want string
	}{
		{"nil form", nil, ""},
		{"top level", map[string]interface{}{"email": " Ana@Example.com "}, "ana@example.com"},
		{"field order", map[string]interface{}{"contactEmail": "b@x.io", "userEmail": "a@x.io"}, "a@x.io"},
		{"not an email", map[string]interface{}{"email": "ana"}, ""},
		{"non string ignored", map[string]interface{}{"email": 42, "ownerEmail": "o@x.io"}, "o@x.io"},
		{"nested applicant", map[string]interface{}{"applicant": map[string]interface{}{"emailAddress": "n@x.io"}}, "n@x.io"},
		{"top level before nested", map[string]interface{}{"email": "top@x.io", "contact": map[string]interface{}{"email": "c@x.io"}}, "top@x.io"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractEmail(tc.form); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestUserBackfill_Backfill(t *testing.T) {
	ctx := context.Background()
	form := map[string]interface{}{"email": "ana@example.com"}

	t.Run("owned payment skipped", func(t *testing.T) {
		b := NewUserBackfill(nil, nil, nil, nil)
		res, err := b.Backfill(ctx, entities.Payment{UserID: "u1"}, form)
		assert.NoError(t, err)
		assert.Equal(t, BackfillSkipped, res.Outcome)
		assert.Equal(t, "u1", res.UserID)
	})

	t.Run("no email", func(t *testing.T) {
		b := NewUserBackfill(nil, nil, nil, nil)
		res, err := b.Backfill(ctx, entities.Payment{ProviderTransactionID: "p1"}, map[string]interface{}{})
		assert.NoError(t, err)
		assert.Equal(t, BackfillNoEmail, res.Outcome)
	})

	t.Run("no account", func(t *testing.T) {
		s := memory.NewStore()
		b := NewUserBackfill(s.Payments(), s.Accounts(), nil, nil)
		res, err := b.Backfill(ctx, entities.Payment{ProviderTransactionID: "p1"}, form)
		assert.NoError(t, err)
		assert.Equal(t, BackfillNoAccount, res.Outcome)
		assert.Equal(t, "ana@example.com", res.Email)
	})

	t.Run("assigned", func(t *testing.T) {
		s := memory.NewStore()
		s.SeedAccounts(entities.Account{ID: "u9", Email: "ANA@example.com"})
		_, err := s.Payments().Insert(ctx, entities.Payment{ID: "pay-1", ProviderTransactionID: "p1"})
		assert.NoError(t, err)

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := mock_interfaces.NewMockIReconciliationMetrics(ctrl)
		m.EXPECT().BackfillOutcome(BackfillAssigned)

		b := NewUserBackfill(s.Payments(), s.Accounts(), m, nil)
		res, err := b.Backfill(ctx, entities.Payment{ProviderTransactionID: "p1"}, form)
		assert.NoError(t, err)
		assert.True(t, res.Assigned())
		assert.Equal(t, "u9", res.UserID)

		stored, _ := s.Payments().GetByProviderTransactionID(ctx, "p1")
		assert.Equal(t, "u9", stored.UserID)
	})

	t.Run("owner attached concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)

		accounts.EXPECT().FindByEmail(gomock.Any(), "ana@example.com").Return(entities.Account{ID: "u9"}, nil)
		payments.EXPECT().AssignUser(gomock.Any(), "p1", "u9").Return(false, nil)

		b := NewUserBackfill(payments, accounts, nil, nil)
		res, err := b.Backfill(ctx, entities.Payment{ProviderTransactionID: "p1"}, form)
		assert.NoError(t, err)
		assert.Equal(t, BackfillSkipped, res.Outcome)
		assert.False(t, res.Assigned())
	})

	t.Run("lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		m := mock_interfaces.NewMockIReconciliationMetrics(ctrl)

		accounts.EXPECT().FindByEmail(gomock.Any(), "ana@example.com").Return(entities.Account{}, errors.New("db"))
		m.EXPECT().BackfillOutcome(BackfillFailed)

		b := NewUserBackfill(payments, accounts, m, nil)
		res, err := b.Backfill(ctx, entities.Payment{ProviderTransactionID: "p1"}, form)
		if !errors.Is(err, ErrBackfillFailed) {
			t.Fatalf("expected ErrBackfillFailed, got %v", err)
		}
		assert.Equal(t, BackfillFailed, res.Outcome)
	})
}
