package services

import (
	"context"
	"time"

	"fixed-deposit-core/internal/dto"
	"fixed-deposit-core/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountServiceInterface orchestrates the fixed deposit account lifecycle
type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, caller Caller, req dto.CreateAccountRequest) (*models.FdAccount, error)
	GetAccount(ctx context.Context, accountNo string) (*models.FdAccount, error)
	GetCustomerAccounts(ctx context.Context, customerID string) ([]models.FdAccount, error)
	CloseAccount(ctx context.Context, caller Caller, accountNo string, req dto.CloseAccountRequest) (*models.FdAccount, error)
	SuspendAccount(ctx context.Context, caller Caller, accountNo string, remarks string) (*models.FdAccount, error)
	ReactivateAccount(ctx context.Context, caller Caller, accountNo string, remarks string) (*models.FdAccount, error)
	MatureAccount(ctx context.Context, caller Caller, accountNo string) (*models.FdAccount, error)
}

// CalculationServiceInterface quotes maturity values and keeps the quote history
type CalculationServiceInterface interface {
	CalculateFd(ctx context.Context, req dto.CalculationRequest) (*models.FdCalculation, error)
	GetCalculationByID(ctx context.Context, id uuid.UUID) (*models.FdCalculation, error)
	GetCalculationHistory(ctx context.Context, customerID string) ([]models.FdCalculation, error)
	GetRecentCalculations(ctx context.Context, customerID string, days int) ([]models.FdCalculation, error)
	AttachAccount(ctx context.Context, calculationID uuid.UUID, accountNo string) error
}

// TransactionServiceInterface records ledger entries and derives balances
type TransactionServiceInterface interface {
	RecordTransaction(ctx context.Context, caller Caller, accountNo string, req dto.TransactionRequest) (*models.AccountTransaction, error)
	GetAccountTransactions(ctx context.Context, accountNo string) ([]models.AccountTransaction, error)
	GetAccountTransactionsByDateRange(ctx context.Context, accountNo string, from time.Time, to time.Time) ([]models.AccountTransaction, error)
	GetCurrentBalance(ctx context.Context, accountNo string) (decimal.Decimal, error)
}

// AccountNumberGeneratorInterface allocates account numbers
type AccountNumberGeneratorInterface interface {
	Generate(ctx context.Context, branchCode string) (string, error)
}

// HealthServiceInterface reports on the core's dependencies
type HealthServiceInterface interface {
	Check(ctx context.Context) *HealthReport
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// AuditLoggerInterface emits one structured event per lifecycle action
type AuditLoggerInterface interface {
	LogAccountCreated(ctx context.Context, account *models.FdAccount)
	LogAccountClosed(ctx context.Context, account *models.FdAccount)
	LogAccountStatusChange(ctx context.Context, accountNo string, oldStatus string, newStatus string, actor string)
	LogTransactionRecorded(ctx context.Context, transaction *models.AccountTransaction)
	LogCalculationPerformed(ctx context.Context, calculation *models.FdCalculation)
	LogAuthorizationDenied(ctx context.Context, username string, capability string, reason string)
	LogAccountNumberCollision(ctx context.Context, accountNo string, attempt int)
	LogLedgerConflict(ctx context.Context, accountNo string, attempt int)
}

// DatabaseHealthChecker is satisfied by *database.DB
type DatabaseHealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// BreakerReporter exposes the circuit state of each directory client
type BreakerReporter interface {
	BreakerStates() map[string]string
}
