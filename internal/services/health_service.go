package services

import (
	"context"
	"time"

	"fixed-deposit-core/internal/gateway"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	HealthStatusHealthy  = "HEALTHY"
	HealthStatusDegraded = "DEGRADED"

	DatabaseUp   = "UP"
	DatabaseDown = "DOWN"

	// Probe identifiers. A "not found" answer still proves the directory is up.
	healthProbeCustomerID  = "0"
	healthProbeProductCode = "HEALTHCHECK"

	databaseCheckTimeout = 2 * time.Second
)

var breakerGaugeValues = map[string]float64{
	"closed":    0,
	"open":      1,
	"half-open": 2,
}

// HealthReport summarises the reachability of the core's dependencies
type HealthReport struct {
	ServiceName              string            `json:"service_name"`
	Status                   string            `json:"status"`
	CustomerServiceAvailable bool              `json:"customer_service_available"`
	ProductServiceAvailable  bool              `json:"product_service_available"`
	DatabaseStatus           string            `json:"database_status"`
	CircuitBreakers          map[string]string `json:"circuit_breakers,omitempty"`
	Timestamp                time.Time         `json:"timestamp"`
}

// healthService implements HealthServiceInterface
type healthService struct {
	serviceName string
	db          DatabaseHealthChecker
	gateway     gateway.ValidationGateway
	breakers    BreakerReporter
	metrics     MetricsRecorderInterface
	logger      *zap.Logger
}

// NewHealthService creates the health checker. breakers may be nil when the
// gateway has no circuit breakers.
func NewHealthService(
	serviceName string,
	db DatabaseHealthChecker,
	gw gateway.ValidationGateway,
	breakers BreakerReporter,
	metrics MetricsRecorderInterface,
	logger *zap.Logger,
) HealthServiceInterface {
	return &healthService{
		serviceName: serviceName,
		db:          db,
		gateway:     gw,
		breakers:    breakers,
		metrics:     metrics,
		logger:      logger,
	}
}

// Check probes the database and both directories concurrently. The core is
// HEALTHY only when all three respond.
func (s *healthService) Check(ctx context.Context) *HealthReport {
	report := &HealthReport{
		ServiceName: s.serviceName,
		Timestamp:   time.Now().UTC(),
	}

	var g errgroup.Group
	g.Go(func() error {
		report.CustomerServiceAvailable = s.probe(gateway.ServiceCustomer, func() error {
			_, err := s.gateway.GetCustomer(ctx, healthProbeCustomerID)
			return err
		})
		return nil
	})
	g.Go(func() error {
		report.ProductServiceAvailable = s.probe(gateway.ServiceProduct, func() error {
			_, err := s.gateway.GetProductByCode(ctx, healthProbeProductCode)
			return err
		})
		return nil
	})
	g.Go(func() error {
		report.DatabaseStatus = s.checkDatabase(ctx)
		return nil
	})
	_ = g.Wait()

	if s.breakers != nil {
		report.CircuitBreakers = s.breakers.BreakerStates()
		for service, state := range report.CircuitBreakers {
			s.metrics.RecordGauge(MetricCircuitBreakerState, breakerGaugeValues[state], map[string]string{"service": service})
		}
	}

	report.Status = HealthStatusDegraded
	if report.CustomerServiceAvailable && report.ProductServiceAvailable && report.DatabaseStatus == DatabaseUp {
		report.Status = HealthStatusHealthy
	}

	return report
}

func (s *healthService) probe(service string, call func() error) bool {
	err := call()
	if err == nil || !gateway.IsTransportError(err) {
		return true
	}
	s.logger.Warn("directory health check failed", zap.String("service", service), zap.Error(err))
	return false
}

func (s *healthService) checkDatabase(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, databaseCheckTimeout)
	defer cancel()

	if err := s.db.HealthCheck(ctx); err != nil {
		s.logger.Error("database health check failed", zap.Error(err))
		return DatabaseDown
	}
	return DatabaseUp
}
