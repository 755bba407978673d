package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest opens a fixed deposit.
type CreateAccountRequest struct {
	CustomerID      string          `json:"customer_id" validate:"required,max=64"`
	ProductCode     string          `json:"product_code" validate:"required,product_code"`
	PrincipalAmount decimal.Decimal `json:"principal_amount" validate:"positive_decimal"`
	InterestRate    decimal.Decimal `json:"interest_rate" validate:"rate_percent"`
	TenureMonths    int             `json:"tenure_months" validate:"required,gt=0"`
	BranchCode      string          `json:"branch_code" validate:"required,branch_code"`
	Remarks         string          `json:"remarks,omitempty" validate:"max=500"`
}

// CloseAccountRequest closes an account. ClosureReason is mandatory.
type CloseAccountRequest struct {
	ClosureReason string `json:"closure_reason" validate:"required,max=500"`
	Remarks       string `json:"remarks,omitempty" validate:"max=500"`
}

// CalculationRequest asks for a maturity quote. CompoundingFrequency is
// optional; nil selects the configured default.
type CalculationRequest struct {
	CustomerID           string          `json:"customer_id" validate:"required,max=64"`
	ProductCode          string          `json:"product_code" validate:"required,product_code"`
	PrincipalAmount      decimal.Decimal `json:"principal_amount" validate:"positive_decimal"`
	TenureMonths         int             `json:"tenure_months" validate:"required,gt=0"`
	CompoundingFrequency *int            `json:"compounding_frequency,omitempty" validate:"omitempty,gt=0,lte=365"`
}

// TransactionRequest records one ledger entry.
type TransactionRequest struct {
	TransactionType string          `json:"transaction_type" validate:"required,transaction_type"`
	Amount          decimal.Decimal `json:"amount" validate:"positive_decimal"`
	Description     string          `json:"description,omitempty" validate:"max=500"`
	ReferenceNo     string          `json:"reference_no,omitempty" validate:"max=100"`
	Remarks         string          `json:"remarks,omitempty" validate:"max=500"`
}

// DateRange bounds a ledger query, inclusive on both ends.
type DateRange struct {
	From time.Time `json:"from" validate:"required"`
	To   time.Time `json:"to" validate:"required"`
}
