package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fixed-deposit-core/internal/cache"
	"fixed-deposit-core/internal/config"
	"fixed-deposit-core/internal/dto"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var tracer = otel.Tracer("gateway")

// AuthTransport adds the directory API key to every outgoing request.
type AuthTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	return t.base.RoundTrip(req)
}

// HTTPGateway talks to the directories over HTTP. Each directory has its own
// circuit breaker; both share one client-side rate limiter. Lookups are never
// retried.
type HTTPGateway struct {
	client          *http.Client
	customerURL     string
	productURL      string
	customerBreaker *gobreaker.CircuitBreaker
	productBreaker  *gobreaker.CircuitBreaker
	limiter         *rate.Limiter
	products        cache.Cache[dto.ProductDetails]
	logger          *zap.Logger
}

// NewHTTPGateway builds a gateway from cfg. products may be nil to disable
// product caching.
func NewHTTPGateway(cfg *config.GatewayConfig, products cache.Cache[dto.ProductDetails], logger *zap.Logger) *HTTPGateway {
	transport := &AuthTransport{
		apiKey: cfg.APIKey,
		base:   http.DefaultTransport,
	}

	limit := rate.Inf
	if cfg.RateLimitPerSecond > 0 {
		limit = rate.Limit(cfg.RateLimitPerSecond)
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}

	g := &HTTPGateway{
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		customerURL: strings.TrimRight(cfg.CustomerServiceURL, "/"),
		productURL:  strings.TrimRight(cfg.ProductServiceURL, "/"),
		limiter:     rate.NewLimiter(limit, burst),
		products:    products,
		logger:      logger,
	}
	g.customerBreaker = g.newBreaker(ServiceCustomer, cfg)
	g.productBreaker = g.newBreaker(ServiceProduct, cfg)

	return g
}

func (g *HTTPGateway) newBreaker(name string, cfg *config.GatewayConfig) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		// A definite "not found" is a healthy answer.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrCustomerNotFound) || errors.Is(err, ErrProductNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			g.logger.Warn("circuit breaker state change",
				zap.String("event_type", "circuit_breaker_state_change"),
				zap.String("service", name),
				zap.String("old_state", from.String()),
				zap.String("new_state", to.String()),
			)
		},
	})
}

// GetCustomer fetches a customer by id.
func (g *HTTPGateway) GetCustomer(ctx context.Context, customerID string) (*dto.CustomerDetails, error) {
	ctx, span := tracer.Start(ctx, "HTTPGateway.GetCustomer")
	defer span.End()
	span.SetAttributes(attribute.String("customer.id", customerID))

	endpoint := fmt.Sprintf("%s/api/v1/customers/%s", g.customerURL, url.PathEscape(customerID))
	customer, err := fetch[dto.CustomerDetails](ctx, g, g.customerBreaker, ServiceCustomer, endpoint, ErrCustomerNotFound)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	return customer, nil
}

// GetProductByCode fetches a product, serving from the cache when possible.
func (g *HTTPGateway) GetProductByCode(ctx context.Context, productCode string) (*dto.ProductDetails, error) {
	ctx, span := tracer.Start(ctx, "HTTPGateway.GetProductByCode")
	defer span.End()
	span.SetAttributes(attribute.String("product.code", productCode))

	if g.products != nil {
		if cached, ok := g.products.Get(ctx, productCode); ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return cached, nil
		}
	}

	endpoint := fmt.Sprintf("%s/api/v1/product/%s", g.productURL, url.PathEscape(productCode))
	product, err := fetch[dto.ProductDetails](ctx, g, g.productBreaker, ServiceProduct, endpoint, ErrProductNotFound)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	if g.products != nil {
		g.products.Set(ctx, productCode, product)
	}
	return product, nil
}

// BreakerStates reports the circuit state of each directory.
func (g *HTTPGateway) BreakerStates() map[string]string {
	return map[string]string{
		ServiceCustomer: g.customerBreaker.State().String(),
		ServiceProduct:  g.productBreaker.State().String(),
	}
}

func fetch[T any](ctx context.Context, g *HTTPGateway, breaker *gobreaker.CircuitBreaker, service, endpoint string, notFound error) (*T, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Service: service, Err: err}
	}

	result, err := breaker.Execute(func() (any, error) {
		return get[T](ctx, g, service, endpoint, notFound)
	})
	if err != nil {
		if errors.Is(err, notFound) {
			return nil, err
		}
		var te *TransportError
		if !errors.As(err, &te) {
			// ErrOpenState / ErrTooManyRequests
			err = &TransportError{Service: service, Err: err}
		}
		g.logger.Error("directory lookup failed",
			zap.String("service", service),
			zap.String("url", endpoint),
			zap.Error(err),
		)
		return nil, err
	}

	return result.(*T), nil
}

func get[T any](ctx context.Context, g *HTTPGateway, service, endpoint string, notFound error) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &TransportError{Service: service, Err: fmt.Errorf("create request: %w", err)}
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &TransportError{Service: service, Err: err}
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, &TransportError{Service: service, Err: fmt.Errorf("read response body: %w", err)}
	}

	g.logger.Debug("directory response",
		zap.String("service", service),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, notFound
	case resp.StatusCode != http.StatusOK:
		return nil, &TransportError{Service: service, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	var envelope dto.DirectoryResponse[T]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &TransportError{Service: service, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !envelope.Success || envelope.Data == nil {
		return nil, notFound
	}

	return envelope.Data, nil
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
