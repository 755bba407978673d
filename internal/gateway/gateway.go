// Package gateway is the read-only client for the customer and product
// directories.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"fixed-deposit-core/internal/dto"
)

const (
	ServiceCustomer = "customer-service"
	ServiceProduct  = "product-service"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
)

// ValidationGateway looks up customers and products.
type ValidationGateway interface {
	GetCustomer(ctx context.Context, customerID string) (*dto.CustomerDetails, error)
	GetProductByCode(ctx context.Context, productCode string) (*dto.ProductDetails, error)
}

// TransportError is any lookup failure other than a definite "not found":
// network errors, unexpected statuses, undecodable bodies, an open breaker.
type TransportError struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned status %d: %v", e.Service, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err is a *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
