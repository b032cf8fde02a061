package routes

import (
	"net/http"
	"time"

	_ "ipfiling/docs"
	"ipfiling/internal/adapter/http/handlers"
	"ipfiling/internal/adapter/http/middleware"
	"ipfiling/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathPayments    = "/payments"
	PathOrders      = "/orders"
	PathQuotes      = "/quotes"
	PathAdminQuotes = "/admin/quotes"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Payments *handlers.PaymentHandler
	Orders   *handlers.OrderHandler
	Quotes   *handlers.QuoteHandler
}

// Options configures the router.
type Options struct {
	AdminToken string
	// Gatherer backs /metrics; nil uses the default registry.
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// NewRouter builds the gin engine with middlewares, docs, metrics and the
// /v1 API.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	router := gin.New()
	router.Use(logging.GinLogger(logger), logging.GinRecovery(logger))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	v1.Use(middleware.Identity(opts.AdminToken))
	addPingRoutes(v1)
	addPaymentRoutes(v1, h.Payments)
	addOrderRoutes(v1, h.Orders)
	addQuoteRoutes(v1, h.Quotes)
	return router
}

// NewServer wraps the router in an http.Server listening on addr.
func NewServer(addr string, router http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
