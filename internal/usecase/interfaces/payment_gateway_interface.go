package interfaces

import "context"

// IGatewayAmountSource reads the charged amount for a gateway payment, in
// minor currency units. found=false when the gateway does not know it.
type IGatewayAmountSource interface {
	AmountMinor(ctx context.Context, paymentRef string) (amount int64, found bool, err error)
}

// IPricingTypes maps pricing keys used by the storefront to canonical
// attribution types.
type IPricingTypes interface {
	CanonicalType(pricingKey string) (string, bool)
}
