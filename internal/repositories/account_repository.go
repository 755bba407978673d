package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixed-deposit-core/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountNumberExists = errors.New("account number already exists")
	ErrStaleAccount        = errors.New("account was modified concurrently")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create inserts a new account. A duplicate account number is reported as
// ErrAccountNumberExists so the caller can allocate another one.
func (r *accountRepository) Create(ctx context.Context, account *models.FdAccount) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountNumberExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByAccountNo retrieves an account by account number
func (r *accountRepository) GetByAccountNo(ctx context.Context, accountNo string) (*models.FdAccount, error) {
	var account models.FdAccount
	if err := r.db.WithContext(ctx).Where("account_no = ?", accountNo).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by number: %w", err)
	}
	return &account, nil
}

// GetByCustomerID retrieves a customer's accounts, newest first
func (r *accountRepository) GetByCustomerID(ctx context.Context, customerID string) ([]models.FdAccount, error) {
	var accounts []models.FdAccount
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for customer: %w", err)
	}
	return accounts, nil
}

// Exists checks whether an account number is taken
func (r *accountRepository) Exists(ctx context.Context, accountNo string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.FdAccount{}).
		Where("account_no = ?", accountNo).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account number: %w", err)
	}
	return count > 0, nil
}

// CountByBranchAndDay counts accounts a branch opened on day's calendar date
func (r *accountRepository) CountByBranchAndDay(ctx context.Context, branchCode string, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).UTC()
	end := start.AddDate(0, 0, 1)

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.FdAccount{}).
		Where("branch_code = ? AND created_at >= ? AND created_at < ?", branchCode, start, end).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count branch accounts: %w", err)
	}
	return count, nil
}

// UpdateWithVersion writes the account's lifecycle fields if nobody changed
// the row since it was read, and bumps the version.
func (r *accountRepository) UpdateWithVersion(ctx context.Context, account *models.FdAccount) error {
	if err := account.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&models.FdAccount{}).
		Where("id = ? AND version = ?", account.ID, account.Version).
		UpdateColumns(map[string]interface{}{
			"status":         account.Status,
			"remarks":        account.Remarks,
			"closed_by":      account.ClosedBy,
			"closed_at":      account.ClosedAt,
			"closure_reason": account.ClosureReason,
			"version":        account.Version + 1,
			"updated_at":     now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStaleAccount
	}

	account.Version++
	account.UpdatedAt = now
	return nil
}
