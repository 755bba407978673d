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
)

// maxStatusUpdateAttempts bounds reload-and-retry when a status change loses
// an optimistic version check.
const maxStatusUpdateAttempts = 3

// accountService implements AccountServiceInterface
type accountService struct {
	accounts   repositories.AccountRepositoryInterface
	gateway    gateway.ValidationGateway
	calculator CalculationServiceInterface
	generator  AccountNumberGeneratorInterface
	audit      AuditLoggerInterface
	metrics    MetricsRecorderInterface
	cfg        config.AccountsConfig
	logger     *zap.Logger
	now        func() time.Time
}

// NewAccountService creates the account lifecycle orchestrator
func NewAccountService(
	accounts repositories.AccountRepositoryInterface,
	gw gateway.ValidationGateway,
	calculator CalculationServiceInterface,
	generator AccountNumberGeneratorInterface,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg config.AccountsConfig,
	logger *zap.Logger,
) AccountServiceInterface {
	return &accountService{
		accounts:   accounts,
		gateway:    gw,
		calculator: calculator,
		generator:  generator,
		audit:      audit,
		metrics:    metrics,
		cfg:        cfg,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreateAccount opens a fixed deposit. Each step runs only if the previous
// one succeeded. The maturity quote is the only record written before the
// account itself.
func (s *accountService) CreateAccount(ctx context.Context, caller Caller, req dto.CreateAccountRequest) (account *models.FdAccount, err error) {
	ctx, span := startSpan(ctx, "AccountService.CreateAccount",
		attribute.String("customer.id", req.CustomerID),
		attribute.String("product.code", req.ProductCode),
		attribute.String("branch.code", req.BranchCode),
	)
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("create_account", time.Since(start))
		endSpan(span, err)
	}()

	actor, err := s.authorize(ctx, caller, CapabilityOpenAccount)
	if err != nil {
		return nil, err
	}

	if err := validation.GetValidator().Struct(&req, apperrors.AccountInvalidData); err != nil {
		return nil, err
	}

	customer, err := s.validateCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	product, err := s.validateProduct(ctx, req.ProductCode)
	if err != nil {
		return nil, err
	}

	if _, err := enforceProductRules(req, product); err != nil {
		return nil, err
	}

	calculation, err := s.calculateMaturity(ctx, req)
	if err != nil {
		return nil, err
	}

	account, err = s.allocateAndPersist(ctx, actor, req, calculation)
	if err != nil {
		return nil, err
	}

	s.linkCalculation(ctx, calculation.ID, account.AccountNo)

	s.audit.LogAccountCreated(ctx, account)
	s.metrics.IncrementCounter(MetricAccountCreated, nil)
	s.logger.Info("created fixed deposit account",
		zap.String("account_no", account.AccountNo),
		zap.String("customer_id", customer.ID.String()),
	)

	return account, nil
}

// authorize returns the acting username when caller holds capability
func (s *accountService) authorize(ctx context.Context, caller Caller, capability Capability) (string, error) {
	result := Authorize(caller, capability)
	if !result.Allowed {
		s.audit.LogAuthorizationDenied(ctx, caller.Username, string(capability), result.Reason)
		return "", result.Err()
	}
	return caller.Username, nil
}

func (s *accountService) validateCustomer(ctx context.Context, customerID string) (*dto.CustomerDetails, error) {
	customer, err := s.gateway.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, gateway.ErrCustomerNotFound) {
			return nil, apperrors.Newf(apperrors.CustomerNotFound, "Customer not found: %s", customerID)
		}
		s.metrics.IncrementCounter(MetricExternalError, map[string]string{"service": gateway.ServiceCustomer})
		s.logger.Error("failed to validate customer", zap.String("customer_id", customerID), zap.Error(err))
		return nil, apperrors.ServiceIntegration(err, "Failed to validate customer with Customer Service")
	}
	return customer, nil
}

func (s *accountService) validateProduct(ctx context.Context, productCode string) (*dto.ProductDetails, error) {
	product, err := s.gateway.GetProductByCode(ctx, productCode)
	if err != nil {
		if errors.Is(err, gateway.ErrProductNotFound) {
			return nil, apperrors.Newf(apperrors.ProductNotFound, "Product not found: %s", productCode)
		}
		s.metrics.IncrementCounter(MetricExternalError, map[string]string{"service": gateway.ServiceProduct})
		s.logger.Error("failed to validate product", zap.String("product_code", productCode), zap.Error(err))
		return nil, apperrors.ServiceIntegration(err, "Failed to validate product with Product Service")
	}
	return product, nil
}

// enforceProductRules checks the request against the product band and
// returns the product it was checked against.
func enforceProductRules(req dto.CreateAccountRequest, product *dto.ProductDetails) (*dto.ProductDetails, error) {
	code := product.ProductCode
	if code == "" {
		code = req.ProductCode
	}

	principal := req.PrincipalAmount.InexactFloat64()
	if req.PrincipalAmount.LessThan(product.MinAmount) {
		return nil, apperrors.Newf(apperrors.AccountInvalidData,
			"Principal amount %.2f is below minimum %.2f for product %s",
			principal, product.MinAmount.InexactFloat64(), code).
			WithField("principal_amount", product.MinAmount.String())
	}
	if req.PrincipalAmount.GreaterThan(product.MaxAmount) {
		return nil, apperrors.Newf(apperrors.AccountInvalidData,
			"Principal amount %.2f exceeds maximum %.2f for product %s",
			principal, product.MaxAmount.InexactFloat64(), code).
			WithField("principal_amount", product.MaxAmount.String())
	}

	if req.TenureMonths < product.MinTermMonths {
		return nil, apperrors.Newf(apperrors.AccountInvalidData,
			"Tenure %d months is below minimum %d months for product %s",
			req.TenureMonths, product.MinTermMonths, code).
			WithField("tenure_months", strconv.Itoa(product.MinTermMonths))
	}
	if req.TenureMonths > product.MaxTermMonths {
		return nil, apperrors.Newf(apperrors.AccountInvalidData,
			"Tenure %d months exceeds maximum %d months for product %s",
			req.TenureMonths, product.MaxTermMonths, code).
			WithField("tenure_months", strconv.Itoa(product.MaxTermMonths))
	}

	if req.InterestRate.LessThan(product.MinInterestRate) || req.InterestRate.GreaterThan(product.MaxInterestRate) {
		bound := product.MinInterestRate
		if req.InterestRate.GreaterThan(product.MaxInterestRate) {
			bound = product.MaxInterestRate
		}
		return nil, apperrors.Newf(apperrors.AccountInvalidData,
			"Interest rate %.2f%% is outside allowed range %.2f%% - %.2f%% for product %s",
			req.InterestRate.InexactFloat64(), product.MinInterestRate.InexactFloat64(),
			product.MaxInterestRate.InexactFloat64(), code).
			WithField("interest_rate", bound.String())
	}

	return product, nil
}

// calculateMaturity asks the calculator for the quote the account is opened
// from. Its failures are returned unchanged.
func (s *accountService) calculateMaturity(ctx context.Context, req dto.CreateAccountRequest) (*models.FdCalculation, error) {
	return s.calculator.CalculateFd(ctx, dto.CalculationRequest{
		CustomerID:      req.CustomerID,
		ProductCode:     req.ProductCode,
		PrincipalAmount: req.PrincipalAmount,
		TenureMonths:    req.TenureMonths,
	})
}

// allocateAndPersist generates an account number and inserts the account,
// drawing a new number whenever the unique index reports a collision.
func (s *accountService) allocateAndPersist(ctx context.Context, actor string, req dto.CreateAccountRequest, calculation *models.FdCalculation) (*models.FdAccount, error) {
	attempts := max(s.cfg.AllocationAttempts, 1)
	openedAt := s.now()

	currency := calculation.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		accountNo, err := s.generator.Generate(ctx, req.BranchCode)
		if err != nil {
			return nil, err
		}

		account := &models.FdAccount{
			AccountNo:       accountNo,
			CustomerID:      req.CustomerID,
			ProductCode:     req.ProductCode,
			PrincipalAmount: req.PrincipalAmount,
			InterestRate:    req.InterestRate,
			TenureMonths:    req.TenureMonths,
			MaturityAmount:  calculation.MaturityAmount,
			MaturityDate:    models.MaturityDateFor(openedAt, req.TenureMonths),
			BranchCode:      req.BranchCode,
			Currency:        currency,
			Status:          models.AccountStatusActive,
			Remarks:         req.Remarks,
			CreatedBy:       actor,
			CreatedAt:       openedAt,
			UpdatedAt:       openedAt,
		}

		err = s.accounts.Create(ctx, account)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, repositories.ErrAccountNumberExists) {
			return nil, apperrors.Internal(err, "Failed to save account")
		}

		s.audit.LogAccountNumberCollision(ctx, accountNo, attempt)
		s.metrics.IncrementCounter(MetricAccountNumberCollision, nil)
	}

	return nil, apperrors.Newf(apperrors.AccountNumberExhausted,
		"Unable to allocate a unique account number for branch %s after %d attempts", req.BranchCode, attempts)
}

// linkCalculation is best-effort; the account is already committed.
func (s *accountService) linkCalculation(ctx context.Context, calculationID uuid.UUID, accountNo string) {
	if err := s.calculator.AttachAccount(ctx, calculationID, accountNo); err != nil {
		s.logger.Warn("failed to link calculation to account",
			zap.String("calculation_id", calculationID.String()),
			zap.String("account_no", accountNo),
			zap.Error(err),
		)
	}
}

// GetAccount returns one account by number
func (s *accountService) GetAccount(ctx context.Context, accountNo string) (*models.FdAccount, error) {
	return s.loadAccount(ctx, accountNo)
}

// GetCustomerAccounts returns a customer's accounts, newest first
func (s *accountService) GetCustomerAccounts(ctx context.Context, customerID string) ([]models.FdAccount, error) {
	accounts, err := s.accounts.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, apperrors.Internal(err, "Failed to load customer accounts")
	}
	return accounts, nil
}

// CloseAccount moves an account to CLOSED. Closing is terminal.
func (s *accountService) CloseAccount(ctx context.Context, caller Caller, accountNo string, req dto.CloseAccountRequest) (account *models.FdAccount, err error) {
	ctx, span := startSpan(ctx, "AccountService.CloseAccount", attribute.String("account.no", accountNo))
	defer func() { endSpan(span, err) }()

	actor, err := s.authorize(ctx, caller, CapabilityCloseAccount)
	if err != nil {
		return nil, err
	}

	if err := validation.GetValidator().Struct(&req, apperrors.AccountInvalidData); err != nil {
		return nil, err
	}

	account, _, err = s.transition(ctx, accountNo, func(a *models.FdAccount) error {
		if err := a.Close(actor, req.ClosureReason, s.now()); err != nil {
			return err
		}
		if req.Remarks != "" {
			a.Remarks = req.Remarks
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.LogAccountClosed(ctx, account)
	s.metrics.IncrementCounter(MetricAccountClosed, nil)
	s.logger.Info("closed fixed deposit account", zap.String("account_no", accountNo), zap.String("closed_by", actor))

	return account, nil
}

// SuspendAccount freezes an ACTIVE account
func (s *accountService) SuspendAccount(ctx context.Context, caller Caller, accountNo, remarks string) (*models.FdAccount, error) {
	return s.changeStatus(ctx, caller, accountNo, func(a *models.FdAccount) error {
		if err := a.Suspend(); err != nil {
			return err
		}
		if remarks != "" {
			a.Remarks = remarks
		}
		return nil
	})
}

// ReactivateAccount returns a SUSPENDED account to ACTIVE
func (s *accountService) ReactivateAccount(ctx context.Context, caller Caller, accountNo, remarks string) (*models.FdAccount, error) {
	return s.changeStatus(ctx, caller, accountNo, func(a *models.FdAccount) error {
		if err := a.Reactivate(); err != nil {
			return err
		}
		if remarks != "" {
			a.Remarks = remarks
		}
		return nil
	})
}

// MatureAccount marks an ACTIVE account MATURED once its maturity date has passed
func (s *accountService) MatureAccount(ctx context.Context, caller Caller, accountNo string) (*models.FdAccount, error) {
	return s.changeStatus(ctx, caller, accountNo, func(a *models.FdAccount) error {
		return a.Mature(s.now())
	})
}

func (s *accountService) changeStatus(ctx context.Context, caller Caller, accountNo string, apply func(*models.FdAccount) error) (account *models.FdAccount, err error) {
	ctx, span := startSpan(ctx, "AccountService.ChangeStatus", attribute.String("account.no", accountNo))
	defer func() { endSpan(span, err) }()

	actor, err := s.authorize(ctx, caller, CapabilityManageLifecycle)
	if err != nil {
		return nil, err
	}

	account, oldStatus, err := s.transition(ctx, accountNo, apply)
	if err != nil {
		return nil, err
	}

	s.audit.LogAccountStatusChange(ctx, accountNo, oldStatus, account.Status, actor)
	s.metrics.IncrementCounter(MetricAccountStatusChanged, map[string]string{"status": account.Status})

	return account, nil
}

// transition loads the account, applies a status change and saves it under
// the version check, reloading and reapplying when another writer got there
// first. It returns the updated account and its previous status.
func (s *accountService) transition(ctx context.Context, accountNo string, apply func(*models.FdAccount) error) (*models.FdAccount, string, error) {
	for attempt := 1; ; attempt++ {
		account, err := s.loadAccount(ctx, accountNo)
		if err != nil {
			return nil, "", err
		}

		oldStatus := account.Status
		if err := apply(account); err != nil {
			return nil, "", statusChangeError(account, oldStatus, err)
		}

		err = s.accounts.UpdateWithVersion(ctx, account)
		if err == nil {
			return account, oldStatus, nil
		}
		if !errors.Is(err, repositories.ErrStaleAccount) {
			return nil, "", apperrors.Internal(err, "Failed to update account")
		}
		if attempt >= maxStatusUpdateAttempts {
			return nil, "", apperrors.Wrap(apperrors.TransactionConflict, err, "")
		}

		s.logger.Debug("account version changed, retrying", zap.String("account_no", accountNo), zap.Int("attempt", attempt))
	}
}

func statusChangeError(account *models.FdAccount, oldStatus string, err error) error {
	switch {
	case errors.Is(err, models.ErrAccountAlreadyClosed), oldStatus == models.AccountStatusClosed:
		return apperrors.Newf(apperrors.AccountAlreadyClosed, "Account is already closed: %s", account.AccountNo)
	case errors.Is(err, models.ErrNotYetMatured):
		return apperrors.Newf(apperrors.AccountInvalidStatusChange,
			"Account %s matures on %s", account.AccountNo, account.MaturityDate.Format(time.DateOnly))
	case errors.Is(err, models.ErrInvalidStatusTransition):
		return apperrors.Newf(apperrors.AccountInvalidStatusChange,
			"Account %s cannot change status from %s", account.AccountNo, oldStatus)
	default:
		return apperrors.Wrap(apperrors.AccountInvalidData, err, "")
	}
}

func (s *accountService) loadAccount(ctx context.Context, accountNo string) (*models.FdAccount, error) {
	account, err := s.accounts.GetByAccountNo(ctx, accountNo)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.Newf(apperrors.AccountNotFound, "Account not found: %s", accountNo)
		}
		return nil, apperrors.Internal(err, "Failed to load account")
	}
	return account, nil
}
