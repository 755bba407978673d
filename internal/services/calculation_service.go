package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fixed-deposit-core/internal/config"
	"fixed-deposit-core/internal/dto"
	apperrors "fixed-deposit-core/internal/errors"
	"fixed-deposit-core/internal/gateway"
	"fixed-deposit-core/internal/models"
	"fixed-deposit-core/internal/repositories"
	"fixed-deposit-core/internal/validation"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// calculationService implements CalculationServiceInterface
type calculationService struct {
	calculations repositories.CalculationRepositoryInterface
	gateway      gateway.ValidationGateway
	audit        AuditLoggerInterface
	metrics      MetricsRecorderInterface
	cfg          config.CalculationConfig
	logger       *zap.Logger
	now          func() time.Time
}

// NewCalculationService creates the maturity calculator
func NewCalculationService(
	calculations repositories.CalculationRepositoryInterface,
	gw gateway.ValidationGateway,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg config.CalculationConfig,
	logger *zap.Logger,
) CalculationServiceInterface {
	return &calculationService{
		calculations: calculations,
		gateway:      gw,
		audit:        audit,
		metrics:      metrics,
		cfg:          cfg,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CalculateFd validates the customer and product, resolves the tiered rate
// for the tenure and records the resulting quote.
func (s *calculationService) CalculateFd(ctx context.Context, req dto.CalculationRequest) (calc *models.FdCalculation, err error) {
	ctx, span := startSpan(ctx, "CalculationService.CalculateFd",
		attribute.String("customer.id", req.CustomerID),
		attribute.String("product.code", req.ProductCode),
		attribute.Int("tenure.months", req.TenureMonths),
	)
	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "failed"
		}
		s.metrics.IncrementCounter(MetricCalculation, map[string]string{"status": status})
		s.metrics.RecordProcessingTime("calculate_fd", time.Since(start))
		endSpan(span, err)
	}()

	if err := validation.GetValidator().Struct(&req, apperrors.CalculationInvalidData); err != nil {
		return nil, err
	}

	product, err := s.lookup(ctx, req.CustomerID, req.ProductCode)
	if err != nil {
		return nil, err
	}

	if err := validateCalculationRequest(req, product); err != nil {
		return nil, err
	}

	frequency := s.cfg.DefaultCompoundingFrequency
	if req.CompoundingFrequency != nil {
		frequency = *req.CompoundingFrequency
	}

	rate := ResolveTieredRate(product.MinInterestRate, product.MaxInterestRate, req.TenureMonths)
	maturity := CompoundMaturity(req.PrincipalAmount, rate, req.TenureMonths, frequency, s.cfg.RoundingScale)

	currency := product.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	calc = &models.FdCalculation{
		CustomerID:           req.CustomerID,
		ProductCode:          req.ProductCode,
		ProductName:          product.ProductName,
		PrincipalAmount:      req.PrincipalAmount,
		TenureMonths:         req.TenureMonths,
		CompoundingFrequency: frequency,
		InterestRate:         rate,
		MaturityAmount:       maturity,
		InterestEarned:       maturity.Sub(req.PrincipalAmount),
		EffectiveRate:        EffectiveAnnualRate(rate, frequency, s.cfg.RoundingScale),
		Currency:             currency,
		CalculationDate:      s.now(),
	}

	if err := s.calculations.Create(ctx, calc); err != nil {
		return nil, apperrors.Internal(err, "Failed to save calculation")
	}

	s.audit.LogCalculationPerformed(ctx, calc)
	s.logger.Debug("calculation completed",
		zap.String("calculation_id", calc.ID.String()),
		zap.String("rate", rate.String()),
		zap.String("maturity_amount", maturity.StringFixed(2)),
	)

	return calc, nil
}

// lookup fetches the customer and product concurrently. The customer's
// failure is reported ahead of the product's.
func (s *calculationService) lookup(ctx context.Context, customerID, productCode string) (*dto.ProductDetails, error) {
	var (
		g                       errgroup.Group
		product                 *dto.ProductDetails
		customerErr, productErr error
	)

	g.Go(func() error {
		customerErr = s.validateCustomer(ctx, customerID)
		return customerErr
	})
	g.Go(func() error {
		product, productErr = s.fetchProduct(ctx, productCode)
		return productErr
	})
	_ = g.Wait()

	if customerErr != nil {
		return nil, customerErr
	}
	if productErr != nil {
		return nil, productErr
	}
	return product, nil
}

func (s *calculationService) validateCustomer(ctx context.Context, customerID string) error {
	customer, err := s.gateway.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, gateway.ErrCustomerNotFound) {
			return apperrors.Newf(apperrors.CustomerNotFound, "Customer not found with ID: %s", customerID)
		}
		s.metrics.IncrementCounter(MetricExternalError, map[string]string{"service": gateway.ServiceCustomer})
		s.logger.Error("customer lookup failed", zap.String("customer_id", customerID), zap.Error(err))
		return apperrors.ServiceIntegration(err, "Failed to validate customer information")
	}

	if !customer.Active {
		return apperrors.New(apperrors.CalculationInvalidData, "Customer account is not active").
			WithField("customer_id", "active")
	}
	return nil
}

func (s *calculationService) fetchProduct(ctx context.Context, productCode string) (*dto.ProductDetails, error) {
	product, err := s.gateway.GetProductByCode(ctx, productCode)
	if err != nil {
		if errors.Is(err, gateway.ErrProductNotFound) {
			return nil, apperrors.Newf(apperrors.ProductNotFound, "Product not found with code: %s", productCode)
		}
		s.metrics.IncrementCounter(MetricExternalError, map[string]string{"service": gateway.ServiceProduct})
		s.logger.Error("product lookup failed", zap.String("product_code", productCode), zap.Error(err))
		return nil, apperrors.ServiceIntegration(err, "Failed to fetch product information")
	}

	if !product.IsActive() {
		return nil, apperrors.Newf(apperrors.CalculationInvalidData, "Product is not active: %s", productCode).
			WithField("product_code", dto.ProductStatusActive)
	}
	return product, nil
}

// validateCalculationRequest re-checks amount and tenure against the product
// band so the calculator never trusts its caller.
func validateCalculationRequest(req dto.CalculationRequest, product *dto.ProductDetails) error {
	if req.PrincipalAmount.LessThan(product.MinAmount) {
		return apperrors.Newf(apperrors.CalculationInvalidData, "Principal amount must be at least %s", product.MinAmount).
			WithField("principal_amount", product.MinAmount.String())
	}
	if req.PrincipalAmount.GreaterThan(product.MaxAmount) {
		return apperrors.Newf(apperrors.CalculationInvalidData, "Principal amount cannot exceed %s", product.MaxAmount).
			WithField("principal_amount", product.MaxAmount.String())
	}
	if req.TenureMonths < product.MinTermMonths {
		return apperrors.Newf(apperrors.CalculationInvalidData, "Tenure must be at least %d months", product.MinTermMonths).
			WithField("tenure_months", strconv.Itoa(product.MinTermMonths))
	}
	if req.TenureMonths > product.MaxTermMonths {
		return apperrors.Newf(apperrors.CalculationInvalidData, "Tenure cannot exceed %d months", product.MaxTermMonths).
			WithField("tenure_months", strconv.Itoa(product.MaxTermMonths))
	}
	return nil
}

// GetCalculationByID returns a stored quote with a fresh product name when
// the product directory answers.
func (s *calculationService) GetCalculationByID(ctx context.Context, id uuid.UUID) (*models.FdCalculation, error) {
	calc, err := s.calculations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCalculationNotFound) {
			return nil, apperrors.Newf(apperrors.CalculationNotFound, "Calculation not found with ID: %s", id)
		}
		return nil, apperrors.Internal(err, "Failed to load calculation")
	}

	calc.ProductName = s.productName(ctx, calc.ProductCode, calc.ProductName)
	return calc, nil
}

// GetCalculationHistory lists every quote for a customer, newest first
func (s *calculationService) GetCalculationHistory(ctx context.Context, customerID string) ([]models.FdCalculation, error) {
	if err := s.validateCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	calculations, err := s.calculations.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, apperrors.Internal(err, "Failed to load calculation history")
	}
	return s.withProductNames(ctx, calculations), nil
}

// GetRecentCalculations lists quotes created within the last days days
func (s *calculationService) GetRecentCalculations(ctx context.Context, customerID string, days int) ([]models.FdCalculation, error) {
	if days <= 0 {
		return nil, apperrors.New(apperrors.CalculationInvalidData, "Days must be positive").WithField("days", "1")
	}

	if err := s.validateCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -days)
	calculations, err := s.calculations.GetRecentByCustomerID(ctx, customerID, since)
	if err != nil {
		return nil, apperrors.Internal(err, "Failed to load recent calculations")
	}
	return s.withProductNames(ctx, calculations), nil
}

// AttachAccount records the account opened from a quote
func (s *calculationService) AttachAccount(ctx context.Context, calculationID uuid.UUID, accountNo string) error {
	if err := s.calculations.AttachAccount(ctx, calculationID, accountNo); err != nil {
		if errors.Is(err, repositories.ErrCalculationNotFound) {
			return apperrors.Newf(apperrors.CalculationNotFound, "Calculation not found with ID: %s", calculationID)
		}
		return apperrors.Internal(err, "Failed to link calculation to account")
	}
	return nil
}

func (s *calculationService) withProductNames(ctx context.Context, calculations []models.FdCalculation) []models.FdCalculation {
	for i := range calculations {
		if calculations[i].ProductName == "" {
			calculations[i].ProductName = s.productName(ctx, calculations[i].ProductCode, "")
		}
	}
	return calculations
}

// productName asks the directory for the current name and falls back to the
// stored name, then to the code.
func (s *calculationService) productName(ctx context.Context, productCode, stored string) string {
	product, err := s.gateway.GetProductByCode(ctx, productCode)
	if err == nil && product.ProductName != "" {
		return product.ProductName
	}
	if err != nil {
		s.logger.Debug("product name lookup failed", zap.String("product_code", productCode), zap.Error(err))
	}
	if stored != "" {
		return stored
	}
	return productCode
}
