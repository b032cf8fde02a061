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

// ErrAttributionUnresolved marks a payment or order persisted without a
// service or type. It is reported, never returned as a failure.
var ErrAttributionUnresolved = errors.New("attribution unresolved")

// AmountSource names the precedence step that produced an amount.
type AmountSource string

const (
	AmountSourceExistingPayment AmountSource = "existing_payment"
	AmountSourceDeclaredPrice   AmountSource = "declared_price"
	AmountSourceGateway         AmountSource = "gateway"
	AmountSourceDefault         AmountSource = "default"
)

// ResolveInput is what the resolver may draw on. Existing is the zero
// Payment when no row matched the provider order id.
type ResolveInput struct {
	PaymentRef         string
	Existing           entities.Payment
	DeclaredPrice      *decimal.Decimal
	GatewayAmountMinor *int64
	ServiceID          string
	Type               string
}

// Attribution is the resolved amount, service and type of a payment.
type Attribution struct {
	Amount       decimal.Decimal
	AmountSource AmountSource
	ServiceID    string
	Type         entities.AttributionType
}

// Unresolved reports whether service or type still need the quote-history
// pass.
func (a Attribution) Unresolved() bool {
	return a.ServiceID == "" || a.Type == ""
}

type amountStep struct {
	source  AmountSource
	resolve func(ctx context.Context, in ResolveInput) (decimal.Decimal, bool)
}

type stringStep func(ctx context.Context, in ResolveInput) (string, bool)

// AttributionResolver evaluates three independent precedence chains. Each
// chain is an ordered list of steps; the first step that reports found wins.
type AttributionResolver struct {
	gateway interfaces.IGatewayAmountSource
	pricing interfaces.IPricingTypes
	logger  *zap.Logger

	amountChain  []amountStep
	serviceChain []stringStep
	typeChain    []stringStep
}

func NewAttributionResolver(gateway interfaces.IGatewayAmountSource, pricing interfaces.IPricingTypes, logger *zap.Logger) *AttributionResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &AttributionResolver{gateway: gateway, pricing: pricing, logger: logger}
	r.amountChain = []amountStep{
		{source: AmountSourceExistingPayment, resolve: existingAmount},
		{source: AmountSourceDeclaredPrice, resolve: declaredAmount},
		{source: AmountSourceGateway, resolve: r.gatewayAmount},
	}
	r.serviceChain = []stringStep{existingService, clientService}
	r.typeChain = []stringStep{existingType, r.clientType}
	return r
}

func (r *AttributionResolver) Resolve(ctx context.Context, in ResolveInput) Attribution {
	out := Attribution{Amount: decimal.Zero, AmountSource: AmountSourceDefault}
	for _, step := range r.amountChain {
		if v, ok := step.resolve(ctx, in); ok {
			out.Amount, out.AmountSource = v, step.source
			break
		}
	}
	out.ServiceID = firstFound(ctx, in, r.serviceChain)
	out.Type = entities.AttributionType(firstFound(ctx, in, r.typeChain))

	r.logger.Debug("[payment][resolver] resolved",
		zap.String("payment_ref", in.PaymentRef),
		zap.String("amount", out.Amount.String()),
		zap.String("amount_source", string(out.AmountSource)),
		zap.String("service_id", out.ServiceID),
		zap.String("type", string(out.Type)),
	)
	return out
}

func firstFound(ctx context.Context, in ResolveInput, chain []stringStep) string {
	for _, step := range chain {
		if v, ok := step(ctx, in); ok {
			return v
		}
	}
	return ""
}

// existingAmount wins whenever a row matched, even one stored at zero.
func existingAmount(_ context.Context, in ResolveInput) (decimal.Decimal, bool) {
	if in.Existing.ProviderTransactionID == "" {
		return decimal.Zero, false
	}
	return in.Existing.Amount, true
}

func declaredAmount(_ context.Context, in ResolveInput) (decimal.Decimal, bool) {
	if in.DeclaredPrice == nil || !in.DeclaredPrice.IsPositive() {
		return decimal.Zero, false
	}
	return *in.DeclaredPrice, true
}

// gatewayAmount converts the raw gateway amount from minor to major units.
// The callback value wins over a gateway lookup.
func (r *AttributionResolver) gatewayAmount(ctx context.Context, in ResolveInput) (decimal.Decimal, bool) {
	if in.GatewayAmountMinor != nil && *in.GatewayAmountMinor > 0 {
		return minorToMajor(*in.GatewayAmountMinor), true
	}
	if r.gateway == nil || in.PaymentRef == "" {
		return decimal.Zero, false
	}
	minor, found, err := r.gateway.AmountMinor(ctx, in.PaymentRef)
	if err != nil {
		r.logger.Warn("[payment][resolver] gateway amount lookup failed", zap.String("payment_ref", in.PaymentRef), zap.Error(err))
		return decimal.Zero, false
	}
	if !found || minor <= 0 {
		return decimal.Zero, false
	}
	return minorToMajor(minor), true
}

func minorToMajor(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

func existingService(_ context.Context, in ResolveInput) (string, bool) {
	return in.Existing.ServiceID, in.Existing.ServiceID != ""
}

func clientService(_ context.Context, in ResolveInput) (string, bool) {
	v := strings.TrimSpace(in.ServiceID)
	return v, v != ""
}

func existingType(_ context.Context, in ResolveInput) (string, bool) {
	return string(in.Existing.Type), in.Existing.Type != ""
}

// clientType maps the storefront pricing key. Keys missing from the table
// pass through as-is and the store constraint decides.
func (r *AttributionResolver) clientType(_ context.Context, in ResolveInput) (string, bool) {
	return mapPricingKey(r.pricing, in.Type)
}

func mapPricingKey(pricing interfaces.IPricingTypes, raw string) (string, bool) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", false
	}
	if pricing != nil {
		if canonical, ok := pricing.CanonicalType(key); ok {
			return canonical, true
		}
	}
	return string(entities.NormalizeAttributionType(key)), true
}
