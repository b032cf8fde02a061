package usecase

import (
	"context"
	"errors"
	"testing"

	"ipfiling/internal/domain/entities"
	mock_interfaces "ipfiling/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_ListMine(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.ListMine(context.Background(), entities.Actor{})
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("scoped to the actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().ListByUserID(gomock.Any(), "u1").Return([]entities.Order{{ID: "o1", UserID: "u1"}}, nil)

		got, err := uc.ListMine(context.Background(), entities.Actor{UserID: "u1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "o1" {
			t.Fatalf("unexpected orders: %+v", got)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), " ", entities.OrderStatusCompleted)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "o1", "shipped")
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "o1", entities.OrderStatusInProgress).Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "o1", entities.OrderStatusInProgress)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "o1", entities.OrderStatusCompleted).
			Return(entities.Order{ID: "o1", Status: entities.OrderStatusCompleted}, nil)

		got, err := uc.UpdateStatus(context.Background(), " o1 ", entities.OrderStatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusCompleted {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}
