package notify

import (
	"context"
	"fmt"
	"time"

	"ipfiling/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// WebhookNotifier POSTs each confirmation as JSON to a fixed URL. Any
// non-2xx response is a failed notification.
type WebhookNotifier struct {
	client *resty.Client
	url    string
	logger *zap.Logger
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string, timeout time.Duration, logger *zap.Logger) *WebhookNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "ipfiling-api")
	return &WebhookNotifier{client: client, url: url, logger: logger}
}

func (w *WebhookNotifier) Notify(ctx context.Context, msg interfaces.PaymentNotification) interfaces.NotifyResult {
	if w.url == "" {
		return interfaces.NotifyResult{Error: "webhook url not configured"}
	}
	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(msg).
		Post(w.url)
	if err != nil {
		return interfaces.NotifyResult{Error: fmt.Sprintf("webhook request: %v", err)}
	}
	if resp.IsError() {
		return interfaces.NotifyResult{Error: fmt.Sprintf("webhook status %d", resp.StatusCode())}
	}
	w.logger.Debug("[notify][webhook] delivered", zap.String("payment_id", msg.PaymentID), zap.Int("status", resp.StatusCode()))
	return interfaces.NotifyResult{Success: true}
}
