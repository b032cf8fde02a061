package payments

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"ipfiling/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// paymentGetter is the part of payment.Client the amount source reads.
type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoAmountSource reads the charged amount of a gateway payment.
// In mock mode the gateway is never called and every lookup is a miss.
type MercadoPagoAmountSource struct {
	client   paymentGetter
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IGatewayAmountSource = (*MercadoPagoAmountSource)(nil)

func NewMercadoPagoAmountSource(accessToken string, logger *zap.Logger) (*MercadoPagoAmountSource, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if isPaymentGatewayMockEnabled() {
		logger.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoAmountSource{mockMode: true, logger: logger}, nil
	}
	if accessToken == "" {
		logger.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized")
	return &MercadoPagoAmountSource{client: payment.NewClient(cfg), logger: logger}, nil
}

// AmountMinor returns the transaction amount in cents. Non-numeric refs and
// unknown payments are misses, not errors.
func (g *MercadoPagoAmountSource) AmountMinor(ctx context.Context, paymentRef string) (int64, bool, error) {
	if g == nil || g.mockMode || g.client == nil {
		return 0, false, nil
	}
	id, err := strconv.Atoi(strings.TrimSpace(paymentRef))
	if err != nil {
		return 0, false, nil
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		g.logger.Warn("[payment][gateway] sdk get failed", zap.String("payment_ref", paymentRef), zap.Error(err))
		return 0, false, err
	}
	if resp == nil || resp.TransactionAmount <= 0 {
		return 0, false, nil
	}
	minor := decimal.NewFromFloat(resp.TransactionAmount).Shift(2).Round(0).IntPart()
	g.logger.Debug("[payment][gateway] amount read",
		zap.String("payment_ref", paymentRef),
		zap.String("provider_status", resp.Status),
		zap.Int64("amount_minor", minor),
	)
	return minor, true, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
