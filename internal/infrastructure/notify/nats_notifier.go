// Package notify delivers payment confirmation messages to downstream
// consumers over NATS or an HTTP webhook.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ipfiling/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

var ErrNATSNotConnected = errors.New("nats connection is not initialized")

// publisher is the part of *nats.Conn the notifier uses.
type publisher interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
}

// NATSNotifier publishes each confirmation as JSON on a subject.
type NATSNotifier struct {
	conn    publisher
	nc      *nats.Conn
	subject string
	logger  *zap.Logger
}

var _ interfaces.INotifier = (*NATSNotifier)(nil)

func NewNATSNotifier(url, subject string, logger *zap.Logger) (*NATSNotifier, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	nc, err := nats.Connect(url,
		nats.Name("ipfiling-api"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(10),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("[notify][nats] disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("[notify][nats] reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	logger.Info("[notify][nats] connected", zap.String("subject", subject))
	return &NATSNotifier{conn: nc, nc: nc, subject: subject, logger: logger}, nil
}

func (n *NATSNotifier) Notify(ctx context.Context, msg interfaces.PaymentNotification) interfaces.NotifyResult {
	if n == nil || n.conn == nil {
		return interfaces.NotifyResult{Error: ErrNATSNotConnected.Error()}
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return interfaces.NotifyResult{Error: fmt.Sprintf("marshal notification: %v", err)}
	}
	if err := n.conn.Publish(n.subject, data); err != nil {
		return interfaces.NotifyResult{Error: fmt.Sprintf("publish: %v", err)}
	}
	// Result reflects server acceptance, not the local buffer.
	if err := n.conn.FlushWithContext(ctx); err != nil {
		return interfaces.NotifyResult{Error: fmt.Sprintf("flush: %v", err)}
	}
	n.logger.Debug("[notify][nats] published", zap.String("subject", n.subject), zap.String("payment_id", msg.PaymentID))
	return interfaces.NotifyResult{Success: true}
}

// Close drains the connection.
func (n *NATSNotifier) Close() {
	if n != nil && n.nc != nil {
		if err := n.nc.Drain(); err != nil {
			n.nc.Close()
		}
	}
}
