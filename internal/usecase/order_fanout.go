package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPaymentNotPersisted = errors.New("payment not persisted")
	ErrOrderOwnerMissing   = errors.New("order owner missing")
)

// orderIDNamespace seeds deterministic order ids (payment id + line index).
var orderIDNamespace = uuid.MustParse("6f1c7a52-3b0e-4c55-9a57-0c1f6f3d2e41")

// FanOutInput is a persisted payment plus the cart it paid for.
type FanOutInput struct {
	Payment   entities.Payment
	UserID    string
	CartLines []entities.CartLine
}

// OrderFanOut expands a confirmed payment into one order per cart line, or
// a single order when no cart was submitted.
//
// It only appends. Re-running it for the same payment produces the same
// order ids, which the store refuses to write twice, but callers are still
// expected to check for existing orders first.
type OrderFanOut struct {
	orders  interfaces.IOrderRepository
	catalog interfaces.ICatalogRepository
	quotes  interfaces.IQuoteHistory
	pricing interfaces.IPricingTypes
	metrics interfaces.IReconciliationMetrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewOrderFanOut(
	orders interfaces.IOrderRepository,
	catalog interfaces.ICatalogRepository,
	quotes interfaces.IQuoteHistory,
	pricing interfaces.IPricingTypes,
	metrics interfaces.IReconciliationMetrics,
	logger *zap.Logger,
) *OrderFanOut {
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderFanOut{
		orders:  orders,
		catalog: catalog,
		quotes:  quotes,
		pricing: pricing,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// OrderID returns the deterministic id of the order generated for a cart
// line of a payment.
func OrderID(paymentID string, lineIndex int) string {
	return uuid.NewSHA1(orderIDNamespace, []byte(fmt.Sprintf("%s:%d", paymentID, lineIndex))).String()
}

func (g *OrderFanOut) Generate(ctx context.Context, in FanOutInput) ([]entities.Order, error) {
	if in.Payment.ID == "" {
		return nil, ErrPaymentNotPersisted
	}
	in.UserID = strings.TrimSpace(in.UserID)
	if in.UserID == "" {
		return nil, ErrOrderOwnerMissing
	}

	var orders []entities.Order
	if len(in.CartLines) > 0 {
		orders = g.multiLine(ctx, in)
	} else {
		orders = []entities.Order{g.singleLine(ctx, in)}
	}

	created, err := g.orders.CreateMany(ctx, orders)
	if err != nil {
		g.logger.Error("[order][fanout] create failed",
			zap.String("payment_id", in.Payment.ID),
			zap.Int("lines", len(orders)),
			zap.Int("created", len(created)),
			zap.Error(err),
		)
		g.metrics.OrdersCreated(len(created))
		return created, fmt.Errorf("create orders for payment %s: %w", in.Payment.ID, err)
	}
	g.metrics.OrdersCreated(len(created))
	g.logger.Info("[order][fanout] orders created",
		zap.String("payment_id", in.Payment.ID),
		zap.Int("lines", len(orders)),
		zap.Int("created", len(created)),
	)
	return created, nil
}

func (g *OrderFanOut) multiLine(ctx context.Context, in FanOutInput) []entities.Order {
	byID, byName := g.loadCatalog(ctx)
	now := g.now().UTC()

	orders := make([]entities.Order, 0, len(in.CartLines))
	for i, line := range in.CartLines {
		o := g.newOrder(in, i, now)

		svc, ok := byID[strings.TrimSpace(line.ServiceID)]
		if !ok {
			svc, ok = byName[strings.TrimSpace(line.Service)]
		}
		if ok {
			o.ServiceID = svc.ID
			o.CategoryID = svc.CategoryID
		} else {
			g.logger.Warn("[order][fanout] cart line service unresolved",
				zap.String("payment_id", in.Payment.ID),
				zap.Int("line", i),
				zap.String("service_id", line.ServiceID),
				zap.String("service", line.Service),
				zap.NamedError("reason", ErrAttributionUnresolved),
			)
		}

		if t, ok := mapPricingKey(g.pricing, line.Type); ok && entities.AttributionType(t).Valid() {
			o.Type = entities.AttributionType(t)
		}
		o.Type = g.sanitizeType(in.Payment.ID, i, o.Type)
		orders = append(orders, o)
	}
	return orders
}

func (g *OrderFanOut) singleLine(ctx context.Context, in FanOutInput) entities.Order {
	o := g.newOrder(in, 0, g.now().UTC())
	serviceID := in.Payment.ServiceID

	if serviceID == "" || o.Type == "" {
		if q := g.latestQuote(ctx, in.UserID); q.ID != "" {
			if serviceID == "" {
				serviceID = q.ServiceID
			}
			if o.Type == "" {
				if t, ok := mapPricingKey(g.pricing, q.ApplicationType); ok {
					o.Type = entities.AttributionType(t)
				}
			}
		}
	}

	if serviceID != "" {
		o.ServiceID = serviceID
		if g.catalog != nil {
			svc, err := g.catalog.GetService(ctx, serviceID)
			if err != nil {
				g.logger.Warn("[order][fanout] service lookup failed", zap.String("service_id", serviceID), zap.Error(err))
			}
			o.CategoryID = svc.CategoryID
		}
	} else {
		g.logger.Warn("[order][fanout] single order without service",
			zap.String("payment_id", in.Payment.ID),
			zap.NamedError("reason", ErrAttributionUnresolved),
		)
	}
	o.Type = g.sanitizeType(in.Payment.ID, 0, o.Type)
	return o
}

func (g *OrderFanOut) newOrder(in FanOutInput, line int, now time.Time) entities.Order {
	return entities.Order{
		ID:        OrderID(in.Payment.ID, line),
		UserID:    in.UserID,
		PaymentID: in.Payment.ID,
		Type:      in.Payment.Type,
		LineIndex: line,
		Status:    entities.OrderStatusReceived,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (g *OrderFanOut) loadCatalog(ctx context.Context) (map[string]entities.Service, map[string]entities.Service) {
	byID := map[string]entities.Service{}
	byName := map[string]entities.Service{}
	if g.catalog == nil {
		return byID, byName
	}
	services, err := g.catalog.ListServices(ctx)
	if err != nil {
		g.logger.Warn("[order][fanout] catalog load failed; lines stay unresolved", zap.Error(err))
		return byID, byName
	}
	for _, s := range services {
		byID[s.ID] = s
		if _, dup := byName[s.Name]; !dup {
			byName[s.Name] = s
		}
	}
	return byID, byName
}

func (g *OrderFanOut) latestQuote(ctx context.Context, userID string) entities.Quote {
	if g.quotes == nil {
		return entities.Quote{}
	}
	q, err := g.quotes.LatestByUser(ctx, userID)
	if err != nil {
		g.logger.Warn("[order][fanout] quote history lookup failed", zap.String("user_id", userID), zap.Error(err))
		return entities.Quote{}
	}
	return q
}

func (g *OrderFanOut) sanitizeType(paymentID string, line int, t entities.AttributionType) entities.AttributionType {
	if t.Valid() {
		return t
	}
	g.logger.Warn("[order][fanout] dropping unknown type",
		zap.String("payment_id", paymentID),
		zap.Int("line", line),
		zap.String("type", string(t)),
	)
	return ""
}
