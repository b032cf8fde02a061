package usecase

import (
	"context"
	"errors"
	"strings"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrMissingCallbackFields = errors.New("orderRef, paymentRef and signature are required")
	ErrPaymentNotFound       = errors.New("payment not found")
)

// Callback outcomes, also used as metric labels.
const (
	OutcomeRejected     = "rejected"
	OutcomeMisconfig    = "misconfigured"
	OutcomeCaptured     = "captured"
	OutcomeCaptureError = "capture_error"
)

// ConfirmPaymentCommand is a gateway confirmation callback plus the
// optional hints the checkout UI forwards with it.
type ConfirmPaymentCommand struct {
	OrderRef           string
	PaymentRef         string
	Signature          string
	UserID             string
	ServiceID          string
	DeclaredPrice      *decimal.Decimal
	GatewayAmountMinor *int64
	FormData           map[string]interface{}
	CartLines          []entities.CartLine
	Type               string
}

// ConfirmationResult is the best-effort outcome of a verified callback.
//
// Success means the signature was accepted. Captured means the payment row
// is durable; everything after capture is reported but never turns the
// response into a failure.
type ConfirmationResult struct {
	Success       bool
	Captured      bool
	Payment       *entities.Payment
	CreatedOrders []entities.Order
	Notify        NotifyOutcome
	CaptureError  string
	OrdersError   string
	Backfill      BackfillResult
	Attribution   Attribution
	TypeDropped   bool
}

// IPaymentConfirmationUseCase verifies and reconciles gateway callbacks and
// exposes the resulting records to staff.
type IPaymentConfirmationUseCase interface {
	Confirm(ctx context.Context, cmd ConfirmPaymentCommand) (ConfirmationResult, error)
	GetPayment(ctx context.Context, providerTransactionID string) (entities.Payment, error)
	ListOrdersByPayment(ctx context.Context, providerTransactionID string) ([]entities.Order, error)
}

type PaymentConfirmationUseCase struct {
	verifier   *SignatureVerifier
	resolver   *AttributionResolver
	reconciler *PaymentReconciler
	fanOut     *OrderFanOut
	backfill   *UserBackfill
	notify     *NotificationDispatcher
	payments   interfaces.IPaymentRepository
	orders     interfaces.IOrderRepository
	metrics    interfaces.IReconciliationMetrics
	logger     *zap.Logger
}

var _ IPaymentConfirmationUseCase = (*PaymentConfirmationUseCase)(nil)

// PaymentConfirmationDeps groups the pipeline stages.
type PaymentConfirmationDeps struct {
	Verifier   *SignatureVerifier
	Resolver   *AttributionResolver
	Reconciler *PaymentReconciler
	FanOut     *OrderFanOut
	Backfill   *UserBackfill
	Notify     *NotificationDispatcher
	Payments   interfaces.IPaymentRepository
	Orders     interfaces.IOrderRepository
	Metrics    interfaces.IReconciliationMetrics
	Logger     *zap.Logger
}

func NewPaymentConfirmationUseCase(d PaymentConfirmationDeps) *PaymentConfirmationUseCase {
	if d.Metrics == nil {
		d.Metrics = interfaces.NopMetrics{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return &PaymentConfirmationUseCase{
		verifier:   d.Verifier,
		resolver:   d.Resolver,
		reconciler: d.Reconciler,
		fanOut:     d.FanOut,
		backfill:   d.Backfill,
		notify:     d.Notify,
		payments:   d.Payments,
		orders:     d.Orders,
		metrics:    d.Metrics,
		logger:     d.Logger,
	}
}

func (u *PaymentConfirmationUseCase) Confirm(ctx context.Context, cmd ConfirmPaymentCommand) (ConfirmationResult, error) {
	cmd.OrderRef = strings.TrimSpace(cmd.OrderRef)
	cmd.PaymentRef = strings.TrimSpace(cmd.PaymentRef)
	cmd.Signature = strings.TrimSpace(cmd.Signature)
	cmd.UserID = strings.TrimSpace(cmd.UserID)
	log := u.logger.With(zap.String("order_ref", cmd.OrderRef), zap.String("payment_ref", cmd.PaymentRef))

	if cmd.OrderRef == "" || cmd.PaymentRef == "" || cmd.Signature == "" {
		log.Warn("[payment][confirm] missing callback fields")
		u.metrics.CallbackProcessed(OutcomeRejected)
		return ConfirmationResult{}, ErrMissingCallbackFields
	}
	if err := u.verifier.Verify(cmd.OrderRef, cmd.PaymentRef, cmd.Signature); err != nil {
		if errors.Is(err, ErrSignatureSecretMissing) {
			log.Error("[payment][confirm] signature secret not configured")
			u.metrics.CallbackProcessed(OutcomeMisconfig)
		} else {
			log.Warn("[payment][confirm] signature rejected")
			u.metrics.CallbackProcessed(OutcomeRejected)
		}
		return ConfirmationResult{}, err
	}
	log.Info("[payment][confirm] signature verified")

	existing, err := u.payments.FindByProviderOrderID(ctx, cmd.OrderRef)
	if err != nil {
		log.Warn("[payment][confirm] existing payment lookup failed", zap.Error(err))
		existing = entities.Payment{}
	}

	attr := u.resolver.Resolve(ctx, ResolveInput{
		PaymentRef:         cmd.PaymentRef,
		Existing:           existing,
		DeclaredPrice:      cmd.DeclaredPrice,
		GatewayAmountMinor: cmd.GatewayAmountMinor,
		ServiceID:          cmd.ServiceID,
		Type:               cmd.Type,
	})
	result := ConfirmationResult{Success: true, Attribution: attr}

	userID := cmd.UserID
	if userID == "" {
		userID = existing.UserID
	}
	rec, err := u.reconciler.Reconcile(ctx, entities.Payment{
		ProviderTransactionID: cmd.PaymentRef,
		ProviderOrderID:       cmd.OrderRef,
		UserID:                userID,
		Amount:                attr.Amount,
		Status:                entities.PaymentStatusPaid,
		ServiceID:             attr.ServiceID,
		Type:                  attr.Type,
		FormData:              cmd.FormData,
	})
	if err != nil {
		// The signature already passed: the gateway must not retry a charge
		// because our store failed.
		log.Error("[payment][confirm] capture failed", zap.Error(err))
		u.metrics.CallbackProcessed(OutcomeCaptureError)
		result.CaptureError = err.Error()
		return result, nil
	}
	payment := rec.Payment
	result.Captured = true
	result.TypeDropped = rec.TypeDropped
	u.metrics.CallbackProcessed(OutcomeCaptured)

	result.CreatedOrders = u.ordersFor(ctx, log, &result, payment, payment.UserID, cmd.CartLines)

	if !payment.HasOwner() && u.backfill != nil {
		bf, err := u.backfill.Backfill(ctx, payment, cmd.FormData)
		result.Backfill = bf
		if err == nil && bf.Assigned() {
			payment.UserID = bf.UserID
			if len(result.CreatedOrders) == 0 {
				result.CreatedOrders = u.ordersFor(ctx, log, &result, payment, bf.UserID, cmd.CartLines)
			}
		}
	}

	result.Payment = &payment
	result.Notify = u.notify.Dispatch(payment)
	log.Info("[payment][confirm] done",
		zap.String("payment_id", payment.ID),
		zap.Int("orders", len(result.CreatedOrders)),
		zap.Bool("notify_dispatched", result.Notify.Dispatched),
	)
	return result, nil
}

// ordersFor returns the payment's orders, generating them only when none
// exist yet and an owner is known.
func (u *PaymentConfirmationUseCase) ordersFor(ctx context.Context, log *zap.Logger, result *ConfirmationResult, p entities.Payment, userID string, lines []entities.CartLine) []entities.Order {
	if u.fanOut == nil || u.orders == nil {
		return nil
	}
	existing, err := u.orders.ListByPaymentID(ctx, p.ID)
	if err != nil {
		log.Error("[payment][confirm] order guard lookup failed; skipping fan-out", zap.Error(err))
		result.OrdersError = err.Error()
		return nil
	}
	if len(existing) > 0 {
		log.Info("[payment][confirm] orders already generated", zap.Int("orders", len(existing)))
		return existing
	}
	if userID == "" {
		return nil
	}
	created, err := u.fanOut.Generate(ctx, FanOutInput{Payment: p, UserID: userID, CartLines: lines})
	if err != nil {
		result.OrdersError = err.Error()
	}
	return created
}

func (u *PaymentConfirmationUseCase) GetPayment(ctx context.Context, providerTransactionID string) (entities.Payment, error) {
	providerTransactionID = strings.TrimSpace(providerTransactionID)
	if providerTransactionID == "" {
		return entities.Payment{}, ErrInvalidProviderTransactionID
	}
	p, err := u.payments.GetByProviderTransactionID(ctx, providerTransactionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentConfirmationUseCase) ListOrdersByPayment(ctx context.Context, providerTransactionID string) ([]entities.Order, error) {
	p, err := u.GetPayment(ctx, providerTransactionID)
	if err != nil {
		return nil, err
	}
	return u.orders.ListByPaymentID(ctx, p.ID)
}
