package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixed-deposit-core/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrLedgerConflict means another writer appended to the same ledger first.
// The whole append can be retried.
var ErrLedgerConflict = errors.New("ledger was modified concurrently")

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// AppendWithLock locks the account row, hands the account and the current
// ledger head to build and appends the returned entry as the next ledger
// position. The account version is bumped in the same database transaction;
// a concurrent append surfaces as ErrLedgerConflict.
func (r *transactionRepository) AppendWithLock(ctx context.Context, accountNo string, build LedgerBuilder) (*models.AccountTransaction, error) {
	var appended *models.AccountTransaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.FdAccount
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_no = ?", accountNo).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to lock account: %w", err)
		}

		last, err := latest(tx, accountNo)
		if err != nil {
			return err
		}

		entry, err := build(&account, last)
		if err != nil {
			return err
		}

		entry.AccountNo = accountNo
		entry.LedgerSeq = 1
		entry.TransactionDate = r.now().Truncate(time.Microsecond)
		if last != nil {
			entry.LedgerSeq = last.LedgerSeq + 1
			// Keep the ledger strictly ordered even if the clock stalls or steps back.
			if !entry.TransactionDate.After(last.TransactionDate) {
				entry.TransactionDate = last.TransactionDate.Add(time.Microsecond)
			}
		}

		if err := tx.Create(entry).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrLedgerConflict
			}
			return fmt.Errorf("failed to append transaction: %w", err)
		}

		result := tx.Model(&models.FdAccount{}).
			Where("id = ? AND version = ?", account.ID, account.Version).
			UpdateColumns(map[string]interface{}{
				"version":    gorm.Expr("version + 1"),
				"updated_at": entry.TransactionDate,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to bump account version: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrLedgerConflict
		}

		appended = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	return appended, nil
}

// GetByAccountNo returns the full ledger, newest first
func (r *transactionRepository) GetByAccountNo(ctx context.Context, accountNo string) ([]models.AccountTransaction, error) {
	var transactions []models.AccountTransaction
	if err := r.db.WithContext(ctx).Where("account_no = ?", accountNo).
		Order("transaction_date DESC, ledger_seq DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetByDateRange returns entries dated within [from, to], newest first
func (r *transactionRepository) GetByDateRange(ctx context.Context, accountNo string, from, to time.Time) ([]models.AccountTransaction, error) {
	var transactions []models.AccountTransaction
	if err := r.db.WithContext(ctx).
		Where("account_no = ? AND transaction_date >= ? AND transaction_date <= ?", accountNo, from.UTC(), to.UTC()).
		Order("transaction_date DESC, ledger_seq DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// GetLatest returns the ledger head, or nil when the ledger is empty
func (r *transactionRepository) GetLatest(ctx context.Context, accountNo string) (*models.AccountTransaction, error) {
	return latest(r.db.WithContext(ctx), accountNo)
}

func latest(db *gorm.DB, accountNo string) (*models.AccountTransaction, error) {
	var transactions []models.AccountTransaction
	if err := db.Where("account_no = ?", accountNo).
		Order("ledger_seq DESC").Limit(1).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get latest transaction: %w", err)
	}
	if len(transactions) == 0 {
		return nil, nil
	}
	return &transactions[0], nil
}
