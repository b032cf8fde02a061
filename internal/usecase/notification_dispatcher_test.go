package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"
	mock_interfaces "ipfiling/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type notifierFunc func(ctx context.Context, n interfaces.PaymentNotification) interfaces.NotifyResult

func (f notifierFunc) Notify(ctx context.Context, n interfaces.PaymentNotification) interfaces.NotifyResult {
	return f(ctx, n)
}

func TestNotificationDispatcher_Dispatch(t *testing.T) {
	p := entities.Payment{ID: "pay-1", ProviderTransactionID: "p1"}

	t.Run("nil notifier", func(t *testing.T) {
		d := NewNotificationDispatcher(nil, 0, true, nil, nil)
		out := d.Dispatch(p)
		assert.False(t, out.Dispatched)
		assert.NotEmpty(t, out.Error)
	})

	t.Run("sync success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		n := mock_interfaces.NewMockINotifier(ctrl)
		n.EXPECT().Notify(gomock.Any(), interfaces.PaymentNotification{PaymentID: "pay-1", Payment: p}).
			Return(interfaces.NotifyResult{Success: true})

		d := NewNotificationDispatcher(n, time.Second, false, nil, nil)
		out := d.Dispatch(p)
		assert.Equal(t, NotifyOutcome{Dispatched: true, Success: true}, out)
	})

	t.Run("sync failure counted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		n := mock_interfaces.NewMockINotifier(ctrl)
		m := mock_interfaces.NewMockIReconciliationMetrics(ctrl)
		n.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(interfaces.NotifyResult{Error: "503"})
		m.EXPECT().NotificationFailed()

		d := NewNotificationDispatcher(n, time.Second, false, m, nil)
		out := d.Dispatch(p)
		assert.True(t, out.Dispatched)
		assert.False(t, out.Success)
		assert.Equal(t, "503", out.Error)
	})

	t.Run("async returns before send completes", func(t *testing.T) {
		release := make(chan struct{})
		var sent atomic.Int32
		n := notifierFunc(func(ctx context.Context, _ interfaces.PaymentNotification) interfaces.NotifyResult {
			<-release
			sent.Add(1)
			return interfaces.NotifyResult{Success: true}
		})

		d := NewNotificationDispatcher(n, time.Second, true, nil, nil)
		out := d.Dispatch(p)
		assert.Equal(t, NotifyOutcome{Dispatched: true, Async: true}, out)
		assert.EqualValues(t, 0, sent.Load())

		close(release)
		d.Wait()
		assert.EqualValues(t, 1, sent.Load())
	})

	t.Run("send context detached and bounded", func(t *testing.T) {
		var deadline bool
		n := notifierFunc(func(ctx context.Context, _ interfaces.PaymentNotification) interfaces.NotifyResult {
			_, deadline = ctx.Deadline()
			return interfaces.NotifyResult{Success: true}
		})

		d := NewNotificationDispatcher(n, time.Second, false, nil, nil)
		d.Dispatch(p)
		assert.True(t, deadline)
	})

	t.Run("panic recovered", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		n := notifierFunc(func(context.Context, interfaces.PaymentNotification) interfaces.NotifyResult {
			panic("boom")
		})

		d := NewNotificationDispatcher(n, time.Second, false, nil, zap.New(core))
		out := d.Dispatch(p)
		assert.False(t, out.Success)
		assert.Equal(t, "notifier panic", out.Error)
		assert.Equal(t, 1, logs.FilterMessage("[payment][notify] notifier panicked").Len())
	})
}
