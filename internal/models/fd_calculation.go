package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FdCalculation records one maturity quote. It is written once and never
// updated, except for linking the account opened from it.
type FdCalculation struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID           string          `gorm:"type:varchar(64);not null;index:idx_fd_calculations_customer_created,priority:1" json:"customer_id"`
	ProductCode          string          `gorm:"type:varchar(50);not null" json:"product_code"`
	ProductName          string          `gorm:"type:varchar(255)" json:"product_name,omitempty"`
	AccountNo            string          `gorm:"type:varchar(64);index" json:"account_no,omitempty"`
	PrincipalAmount      decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"principal_amount"`
	TenureMonths         int             `gorm:"not null" json:"tenure_months"`
	CompoundingFrequency int             `gorm:"not null" json:"compounding_frequency"`
	InterestRate         decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	MaturityAmount       decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"maturity_amount"`
	InterestEarned       decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"interest_earned"`
	EffectiveRate        decimal.Decimal `gorm:"type:decimal(7,2);not null" json:"effective_rate"`
	Currency             string          `gorm:"type:varchar(3)" json:"currency"`
	CalculationDate      time.Time       `gorm:"not null" json:"calculation_date"`
	CreatedAt            time.Time       `gorm:"not null;index:idx_fd_calculations_customer_created,priority:2" json:"created_at"`
}

// BeforeCreate hook for FdCalculation
func (c *FdCalculation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now().UTC()
	if c.CalculationDate.IsZero() {
		c.CalculationDate = now
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}

	return c.Validate()
}

// Validate validates the calculation fields
func (c *FdCalculation) Validate() error {
	if c.CustomerID == "" {
		return errors.New("customer ID is required")
	}

	if c.ProductCode == "" {
		return errors.New("product code is required")
	}

	if c.PrincipalAmount.LessThanOrEqual(decimal.Zero) {
		return errors.New("principal amount must be positive")
	}

	if c.TenureMonths <= 0 {
		return errors.New("tenure must be at least one month")
	}

	if c.CompoundingFrequency <= 0 {
		return errors.New("compounding frequency must be positive")
	}

	if !c.MaturityAmount.Sub(c.PrincipalAmount).Equal(c.InterestEarned) {
		return errors.New("interest earned must equal maturity minus principal")
	}

	return nil
}

// TableName returns the table name for FdCalculation
func (c *FdCalculation) TableName() string {
	return "fd_calculations"
}
