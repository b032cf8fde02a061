// Package metrics exposes the reconciliation pipeline counters to
// Prometheus.
package metrics

import (
	"ipfiling/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "ipfiling"
	metricsSubsystem = "payments"
)

// PrometheusMetrics implements interfaces.IReconciliationMetrics.
type PrometheusMetrics struct {
	callbacks       *prometheus.CounterVec
	typeFallbacks   prometheus.Counter
	ordersCreated   prometheus.Counter
	ordersPerCharge prometheus.Histogram
	backfills       *prometheus.CounterVec
	notifyFailures  prometheus.Counter
}

var _ interfaces.IReconciliationMetrics = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics registers the collectors on reg. A nil reg uses the
// default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &PrometheusMetrics{
		callbacks: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "callbacks_total",
				Help:      "Payment callbacks processed, by outcome",
			},
			[]string{"outcome"},
		),
		typeFallbacks: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "type_constraint_fallbacks_total",
			Help:      "Payment writes retried with a null attribution type",
		}),
		ordersCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "orders_created_total",
			Help:      "Work orders created from confirmed payments",
		}),
		ordersPerCharge: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "orders_per_payment",
			Help:      "Orders created per fan-out",
			Buckets:   []float64{1, 2, 3, 5, 8, 13},
		}),
		backfills: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "user_backfill_total",
				Help:      "User backfill attempts, by outcome",
			},
			[]string{"outcome"},
		),
		notifyFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "notification_failures_total",
			Help:      "Confirmation notifications that failed",
		}),
	}
}

func (m *PrometheusMetrics) CallbackProcessed(outcome string) {
	m.callbacks.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetrics) TypeConstraintFallback() {
	m.typeFallbacks.Inc()
}

func (m *PrometheusMetrics) OrdersCreated(n int) {
	if n <= 0 {
		return
	}
	m.ordersCreated.Add(float64(n))
	m.ordersPerCharge.Observe(float64(n))
}

func (m *PrometheusMetrics) BackfillOutcome(outcome string) {
	m.backfills.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetrics) NotificationFailed() {
	m.notifyFailures.Inc()
}
