// Package app wires configuration, storage, notifiers and use cases into
// the service the CLI commands run.
package app

import (
	"context"
	"fmt"

	"ipfiling/internal/adapter/http/handlers"
	"ipfiling/internal/adapter/http/routes"
	"ipfiling/internal/adapter/persistence/memory"
	"ipfiling/internal/adapter/persistence/repository"
	"ipfiling/internal/infrastructure/config"
	"ipfiling/internal/infrastructure/database"
	"ipfiling/internal/infrastructure/metrics"
	"ipfiling/internal/infrastructure/notify"
	"ipfiling/internal/infrastructure/payments"
	"ipfiling/internal/infrastructure/pricing"
	"ipfiling/internal/usecase"
	"ipfiling/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// Stores is the persistence the use cases depend on.
type Stores struct {
	Payments   interfaces.IPaymentRepository
	Orders     interfaces.IOrderRepository
	Quotes     interfaces.IQuoteRepository
	QuoteItems interfaces.IQuoteItemRepository
	History    interfaces.IQuoteHistory
	Catalog    interfaces.ICatalogRepository
	Accounts   interfaces.IAccountRepository
}

// Container owns every long-lived dependency of the service.
type Container struct {
	Config   config.Config
	Logger   *zap.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.PrometheusMetrics
	Stores   Stores
	DynamoDB *dynamodb.Client
	Tables   repository.Tables
	Memory   *memory.Store

	Dispatcher   *usecase.NotificationDispatcher
	Confirmation *usecase.PaymentConfirmationUseCase
	Quotes       *usecase.QuoteUseCase
	Orders       *usecase.OrderUseCase

	closers []func()
}

// New builds the container for cfg. Optional collaborators that fail to
// initialize (gateway, notifier) are logged and left out; storage failures
// are returned.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Container{Config: cfg, Logger: logger, Registry: prometheus.NewRegistry()}
	c.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	c.Metrics = metrics.NewPrometheusMetrics(c.Registry)

	if err := c.initStores(ctx); err != nil {
		return nil, err
	}

	pricingTable, err := pricing.Load(cfg.PricingTypesPath)
	if err != nil {
		return nil, err
	}

	var gateway interfaces.IGatewayAmountSource
	if src, err := payments.NewMercadoPagoAmountSource(cfg.MercadoPagoAccessToken, logger); err != nil {
		logger.Warn("[app] gateway amount source disabled", zap.Error(err))
	} else {
		gateway = src
	}

	notifier := c.newNotifier()
	c.Dispatcher = usecase.NewNotificationDispatcher(notifier, cfg.NotifyTimeout, cfg.NotifyAsync, c.Metrics, logger)
	// In-flight sends finish before the notifier connection closes.
	c.closers = append([]func(){c.Dispatcher.Wait}, c.closers...)

	s := c.Stores
	c.Confirmation = usecase.NewPaymentConfirmationUseCase(usecase.PaymentConfirmationDeps{
		Verifier:   usecase.NewSignatureVerifier(cfg.SignatureSecret),
		Resolver:   usecase.NewAttributionResolver(gateway, pricingTable, logger),
		Reconciler: usecase.NewPaymentReconciler(s.Payments, c.Metrics, logger),
		FanOut:     usecase.NewOrderFanOut(s.Orders, s.Catalog, s.History, pricingTable, c.Metrics, logger),
		Backfill:   usecase.NewUserBackfill(s.Payments, s.Accounts, c.Metrics, logger),
		Notify:     c.Dispatcher,
		Payments:   s.Payments,
		Orders:     s.Orders,
		Metrics:    c.Metrics,
		Logger:     logger,
	})
	c.Quotes = usecase.NewQuoteUseCase(s.Quotes, s.QuoteItems, logger)
	c.Orders = usecase.NewOrderUseCase(s.Orders, logger)
	return c, nil
}

func (c *Container) initStores(ctx context.Context) error {
	switch c.Config.StorageBackend {
	case config.BackendMemory:
		c.Memory = memory.NewStore()
		c.Stores = Stores{
			Payments:   c.Memory.Payments(),
			Orders:     c.Memory.Orders(),
			Quotes:     c.Memory.Quotes(),
			QuoteItems: c.Memory.QuoteItems(),
			History:    c.Memory.Quotes(),
			Catalog:    c.Memory.Catalog(),
			Accounts:   c.Memory.Accounts(),
		}
		c.Logger.Warn("[app] using in-memory storage; data is lost on exit")
		return nil
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, c.Logger)
		if err != nil {
			return fmt.Errorf("connect dynamodb: %w", err)
		}
		c.DynamoDB = ddb
		c.Tables = repository.TablesFromEnv()
		quotes := repository.NewQuoteDynamoRepository(ddb, c.Tables.Quotes).WithItemsTable(c.Tables.QuoteItems)
		c.Stores = Stores{
			Payments:   repository.NewPaymentDynamoRepository(ddb, c.Tables.Payments),
			Orders:     repository.NewOrderDynamoRepository(ddb, c.Tables.Orders),
			Quotes:     quotes,
			QuoteItems: repository.NewQuoteItemDynamoRepository(ddb, c.Tables.QuoteItems, c.Tables.Quotes),
			History:    quotes,
			Catalog:    repository.NewCatalogDynamoRepository(ddb, c.Tables.Services),
			Accounts:   repository.NewAccountDynamoRepository(ddb, c.Tables.Accounts),
		}
		return nil
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Config.StorageBackend)
	}
}

func (c *Container) newNotifier() interfaces.INotifier {
	switch c.Config.Notifier {
	case config.NotifierNATS:
		n, err := notify.NewNATSNotifier(c.Config.NATSURL, c.Config.NATSSubject, c.Logger)
		if err != nil {
			c.Logger.Warn("[app] nats notifier disabled", zap.Error(err))
			return nil
		}
		c.closers = append(c.closers, n.Close)
		return n
	case config.NotifierWebhook:
		return notify.NewWebhookNotifier(c.Config.NotifyWebhookURL, c.Config.NotifyTimeout, c.Logger)
	default:
		c.Logger.Info("[app] notifications disabled")
		return nil
	}
}

// Router builds the HTTP router over the container's use cases.
func (c *Container) Router() *gin.Engine {
	return routes.NewRouter(routes.Handlers{
		Payments: handlers.NewPaymentHandler(c.Confirmation, c.Logger),
		Orders:   handlers.NewOrderHandler(c.Orders),
		Quotes:   handlers.NewQuoteHandler(c.Quotes),
	}, routes.Options{
		AdminToken: c.Config.AdminToken,
		Gatherer:   c.Registry,
		Logger:     c.Logger,
	})
}

// Close waits for in-flight notifications, then releases connections.
func (c *Container) Close() {
	for _, fn := range c.closers {
		fn()
	}
}
