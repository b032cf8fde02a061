package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrNotificationFailed = errors.New("notification failed")

const defaultNotifyTimeout = 10 * time.Second

// NotifyOutcome is what the confirmation response reports about the
// notification. Success and Error are only known when Async is false.
type NotifyOutcome struct {
	Dispatched bool   `json:"dispatched"`
	Async      bool   `json:"async"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// NotificationDispatcher hands confirmations to the notifier without
// holding up the gateway acknowledgement. Failures are logged and counted,
// never retried here.
type NotificationDispatcher struct {
	notifier interfaces.INotifier
	timeout  time.Duration
	async    bool
	metrics  interfaces.IReconciliationMetrics
	logger   *zap.Logger
	wg       sync.WaitGroup
}

func NewNotificationDispatcher(notifier interfaces.INotifier, timeout time.Duration, async bool, metrics interfaces.IReconciliationMetrics, logger *zap.Logger) *NotificationDispatcher {
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationDispatcher{notifier: notifier, timeout: timeout, async: async, metrics: metrics, logger: logger}
}

// Dispatch never blocks on the notifier when the dispatcher is async. The
// send runs on a context detached from the request.
func (d *NotificationDispatcher) Dispatch(p entities.Payment) NotifyOutcome {
	if d == nil || d.notifier == nil {
		return NotifyOutcome{Error: "notifier not configured"}
	}
	n := interfaces.PaymentNotification{PaymentID: p.ID, Payment: p}
	if !d.async {
		res := d.send(n)
		return NotifyOutcome{Dispatched: true, Success: res.Success, Error: res.Error}
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.send(n)
	}()
	return NotifyOutcome{Dispatched: true, Async: true}
}

// Wait blocks until in-flight notifications finish.
func (d *NotificationDispatcher) Wait() {
	if d != nil {
		d.wg.Wait()
	}
}

func (d *NotificationDispatcher) send(n interfaces.PaymentNotification) (res interfaces.NotifyResult) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			res = interfaces.NotifyResult{Error: "notifier panic"}
			d.logger.Error("[payment][notify] notifier panicked", zap.String("payment_id", n.PaymentID), zap.Any("recovered", r))
			d.metrics.NotificationFailed()
		}
	}()

	res = d.notifier.Notify(ctx, n)
	if !res.Success {
		d.metrics.NotificationFailed()
		d.logger.Warn("[payment][notify] notification failed",
			zap.String("payment_id", n.PaymentID),
			zap.String("error", res.Error),
			zap.NamedError("reason", ErrNotificationFailed),
		)
		return res
	}
	d.logger.Info("[payment][notify] notification sent", zap.String("payment_id", n.PaymentID))
	return res
}
