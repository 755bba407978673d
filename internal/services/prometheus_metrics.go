package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counter names accepted by IncrementCounter
const (
	MetricAccountCreated         = "account_created"
	MetricAccountClosed          = "account_closed"
	MetricAccountStatusChanged   = "account_status_changed"
	MetricTransactionRecorded    = "transaction_recorded"
	MetricCalculation            = "calculation"
	MetricExternalError          = "external_error"
	MetricAccountNumberCollision = "account_number_collision"
	MetricLedgerConflict         = "ledger_conflict"
	MetricCircuitBreakerState    = "circuit_breaker_state"
)

type PrometheusMetrics struct {
	accountsCreated         prometheus.Counter
	accountsClosed          prometheus.Counter
	accountStatusChanges    *prometheus.CounterVec
	transactionsRecorded    *prometheus.CounterVec
	calculations            *prometheus.CounterVec
	externalErrors          *prometheus.CounterVec
	accountNumberCollisions prometheus.Counter
	ledgerConflicts         prometheus.Counter
	operationDuration       *prometheus.HistogramVec
	circuitBreakerState     *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the core's collectors with reg. Pass a
// fresh prometheus.NewRegistry() per process or test.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		accountsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fd_accounts_created_total",
				Help: "Total number of fixed deposit accounts opened",
			},
		),
		accountsClosed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fd_accounts_closed_total",
				Help: "Total number of fixed deposit accounts closed",
			},
		),
		accountStatusChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fd_account_status_changes_total",
				Help: "Total number of account status changes by target status",
			},
			[]string{"status"},
		),
		transactionsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fd_transactions_recorded_total",
				Help: "Total number of ledger entries recorded",
			},
			[]string{"type"},
		),
		calculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fd_calculations_total",
				Help: "Total number of maturity calculations",
			},
			[]string{"status"},
		),
		externalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fd_external_errors_total",
				Help: "Total number of failed directory lookups",
			},
			[]string{"service"},
		),
		accountNumberCollisions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fd_account_number_collisions_total",
				Help: "Total number of generated account numbers that already existed",
			},
		),
		ledgerConflicts: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fd_ledger_conflicts_total",
				Help: "Total number of ledger appends lost to a concurrent writer",
			},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fd_operation_duration_seconds",
				Help:    "Core operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fd_circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAccountCreated:
		m.accountsCreated.Inc()
	case MetricAccountClosed:
		m.accountsClosed.Inc()
	case MetricAccountStatusChanged:
		if status := tags["status"]; status != "" {
			m.accountStatusChanges.WithLabelValues(status).Inc()
		}
	case MetricTransactionRecorded:
		if txType := tags["type"]; txType != "" {
			m.transactionsRecorded.WithLabelValues(txType).Inc()
		}
	case MetricCalculation:
		if status := tags["status"]; status != "" {
			m.calculations.WithLabelValues(status).Inc()
		}
	case MetricExternalError:
		if service := tags["service"]; service != "" {
			m.externalErrors.WithLabelValues(service).Inc()
		}
	case MetricAccountNumberCollision:
		m.accountNumberCollisions.Inc()
	case MetricLedgerConflict:
		m.ledgerConflicts.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.operationDuration.WithLabelValues(name).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
