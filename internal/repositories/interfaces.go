package repositories

import (
	"context"
	"time"

	"fixed-deposit-core/internal/models"

	"github.com/google/uuid"
)

// LedgerBuilder receives the locked account and its latest ledger entry
// (nil when the ledger is empty) and returns the entry to append. The
// repository assigns AccountNo, LedgerSeq and TransactionDate.
type LedgerBuilder func(account *models.FdAccount, last *models.AccountTransaction) (*models.AccountTransaction, error)

// AccountRepositoryInterface defines the contract for fixed deposit account storage
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.FdAccount) error
	GetByAccountNo(ctx context.Context, accountNo string) (*models.FdAccount, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]models.FdAccount, error)
	Exists(ctx context.Context, accountNo string) (bool, error)
	CountByBranchAndDay(ctx context.Context, branchCode string, day time.Time) (int64, error)
	UpdateWithVersion(ctx context.Context, account *models.FdAccount) error
}

// TransactionRepositoryInterface defines the contract for the append-only account ledger
type TransactionRepositoryInterface interface {
	AppendWithLock(ctx context.Context, accountNo string, build LedgerBuilder) (*models.AccountTransaction, error)
	GetByAccountNo(ctx context.Context, accountNo string) ([]models.AccountTransaction, error)
	GetByDateRange(ctx context.Context, accountNo string, from time.Time, to time.Time) ([]models.AccountTransaction, error)
	GetLatest(ctx context.Context, accountNo string) (*models.AccountTransaction, error)
}

// CalculationRepositoryInterface defines the contract for maturity quote storage
type CalculationRepositoryInterface interface {
	Create(ctx context.Context, calculation *models.FdCalculation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FdCalculation, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]models.FdCalculation, error)
	GetRecentByCustomerID(ctx context.Context, customerID string, since time.Time) ([]models.FdCalculation, error)
	AttachAccount(ctx context.Context, id uuid.UUID, accountNo string) error
}
