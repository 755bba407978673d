package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountStatusActive    = "ACTIVE"
	AccountStatusClosed    = "CLOSED"
	AccountStatusSuspended = "SUSPENDED"
	AccountStatusMatured   = "MATURED"

	DefaultCurrency = "INR"

	// AccountNoMaxLength is the width of every account_no column.
	AccountNoMaxLength = 64
)

var (
	ErrInvalidAccountStatus    = errors.New("invalid account status")
	ErrAccountAlreadyClosed    = errors.New("account is already closed")
	ErrInvalidStatusTransition = errors.New("account status transition not permitted")
	ErrNotYetMatured           = errors.New("account has not reached its maturity date")
)

// FdAccount is a fixed deposit held by a customer under a product.
type FdAccount struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountNo       string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"account_no"`
	CustomerID      string          `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	ProductCode     string          `gorm:"type:varchar(50);not null" json:"product_code"`
	PrincipalAmount decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"principal_amount"`
	InterestRate    decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	TenureMonths    int             `gorm:"not null" json:"tenure_months"`
	MaturityAmount  decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"maturity_amount"`
	MaturityDate    time.Time       `gorm:"not null" json:"maturity_date"`
	BranchCode      string          `gorm:"type:varchar(20);not null;index:idx_fd_accounts_branch_created,priority:1" json:"branch_code"`
	Currency        string          `gorm:"type:varchar(3);not null" json:"currency"`
	Status          string          `gorm:"type:varchar(20);not null;index" json:"status"`
	Remarks         string          `gorm:"type:text" json:"remarks,omitempty"`
	CreatedBy       string          `gorm:"type:varchar(100);not null" json:"created_by"`
	CreatedAt       time.Time       `gorm:"not null;index:idx_fd_accounts_branch_created,priority:2" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
	ClosedBy        string          `gorm:"type:varchar(100)" json:"closed_by,omitempty"`
	ClosedAt        *time.Time      `json:"closed_at,omitempty"`
	ClosureReason   string          `gorm:"type:text" json:"closure_reason,omitempty"`
	Version         int64           `gorm:"not null;default:1" json:"version"`
}

// BeforeCreate hook for FdAccount
func (a *FdAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Status == "" {
		a.Status = AccountStatusActive
	}

	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}

	if a.Version == 0 {
		a.Version = 1
	}

	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for FdAccount
func (a *FdAccount) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now().UTC()
	return a.Validate()
}

// Validate validates the account fields
func (a *FdAccount) Validate() error {
	if a.AccountNo == "" {
		return errors.New("account number is required")
	}

	if a.CustomerID == "" {
		return errors.New("customer ID is required")
	}

	if a.ProductCode == "" {
		return errors.New("product code is required")
	}

	if a.BranchCode == "" {
		return errors.New("branch code is required")
	}

	if !IsValidAccountStatus(a.Status) {
		return ErrInvalidAccountStatus
	}

	if a.PrincipalAmount.LessThanOrEqual(decimal.Zero) {
		return errors.New("principal amount must be positive")
	}

	if a.TenureMonths <= 0 {
		return errors.New("tenure must be at least one month")
	}

	if a.InterestRate.IsNegative() {
		return errors.New("interest rate cannot be negative")
	}

	if a.MaturityAmount.LessThan(a.PrincipalAmount) {
		return errors.New("maturity amount cannot be below principal")
	}

	if a.Status == AccountStatusClosed && a.ClosedAt == nil {
		return errors.New("closed account requires a closure timestamp")
	}

	return nil
}

// IsClosed returns true once the account has been closed
func (a *FdAccount) IsClosed() bool {
	return a.Status == AccountStatusClosed
}

// Close moves the account to CLOSED. A closed account never reopens.
func (a *FdAccount) Close(actor, reason string, at time.Time) error {
	if a.IsClosed() {
		return ErrAccountAlreadyClosed
	}

	a.Status = AccountStatusClosed
	a.ClosedBy = actor
	a.ClosureReason = reason
	closedAt := at.UTC()
	a.ClosedAt = &closedAt
	return nil
}

// Suspend freezes an active account.
func (a *FdAccount) Suspend() error {
	if a.Status != AccountStatusActive {
		return ErrInvalidStatusTransition
	}
	a.Status = AccountStatusSuspended
	return nil
}

// Reactivate returns a suspended account to ACTIVE.
func (a *FdAccount) Reactivate() error {
	if a.Status != AccountStatusSuspended {
		return ErrInvalidStatusTransition
	}
	a.Status = AccountStatusActive
	return nil
}

// Mature marks an active account whose maturity date has passed.
func (a *FdAccount) Mature(now time.Time) error {
	if a.Status != AccountStatusActive {
		return ErrInvalidStatusTransition
	}
	if now.Before(a.MaturityDate) {
		return ErrNotYetMatured
	}
	a.Status = AccountStatusMatured
	return nil
}

// TableName returns the table name for FdAccount
func (a *FdAccount) TableName() string {
	return "fd_accounts"
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusActive, AccountStatusClosed, AccountStatusSuspended, AccountStatusMatured:
		return true
	default:
		return false
	}
}

// MaturityDateFor returns the date an account opened at openedAt matures.
func MaturityDateFor(openedAt time.Time, tenureMonths int) time.Time {
	return openedAt.AddDate(0, tenureMonths, 0)
}
