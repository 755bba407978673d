package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType names an account-affecting event.
type TransactionType string

const (
	TransactionTypeDeposit          TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal       TransactionType = "WITHDRAWAL"
	TransactionTypeInterestCredit   TransactionType = "INTEREST_CREDIT"
	TransactionTypePrematureClosure TransactionType = "PREMATURE_CLOSURE"
	TransactionTypeMaturityPayout   TransactionType = "MATURITY_PAYOUT"
	TransactionTypePenaltyDebit     TransactionType = "PENALTY_DEBIT"
	TransactionTypeReversal         TransactionType = "REVERSAL"
)

// BalanceEffect is how a transaction type moves the running balance.
type BalanceEffect int

const (
	EffectNone BalanceEffect = iota
	EffectCredit
	EffectDebit
)

// BalanceEffects classifies every transaction type. REVERSAL leaves the
// balance untouched.
var BalanceEffects = map[TransactionType]BalanceEffect{
	TransactionTypeDeposit:          EffectCredit,
	TransactionTypeInterestCredit:   EffectCredit,
	TransactionTypeWithdrawal:       EffectDebit,
	TransactionTypePenaltyDebit:     EffectDebit,
	TransactionTypePrematureClosure: EffectDebit,
	TransactionTypeMaturityPayout:   EffectDebit,
	TransactionTypeReversal:         EffectNone,
}

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrImmutableTransaction   = errors.New("account transactions are append-only")
)

// Apply returns the balance after moving amount in this direction.
func (e BalanceEffect) Apply(balance, amount decimal.Decimal) decimal.Decimal {
	switch e {
	case EffectCredit:
		return balance.Add(amount)
	case EffectDebit:
		return balance.Sub(amount)
	default:
		return balance
	}
}

func (e BalanceEffect) String() string {
	switch e {
	case EffectCredit:
		return "credit"
	case EffectDebit:
		return "debit"
	default:
		return "none"
	}
}

// ParseTransactionType accepts the type name in any case.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := BalanceEffects[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, s)
	}
	return t, nil
}

// Effect returns the balance effect for t.
func (t TransactionType) Effect() BalanceEffect {
	return BalanceEffects[t]
}

// AccountTransaction is one immutable entry of an account's ledger.
// LedgerSeq is the 1-based position of the entry within its account.
type AccountTransaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID   string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"transaction_id"`
	AccountNo       string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_account_transactions_ledger,priority:1;index:idx_account_transactions_date,priority:1" json:"account_no"`
	LedgerSeq       int64           `gorm:"not null;uniqueIndex:idx_account_transactions_ledger,priority:2" json:"ledger_seq"`
	TransactionType TransactionType `gorm:"type:varchar(30);not null" json:"transaction_type"`
	Amount          decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"amount"`
	BalanceBefore   decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"balance_before"`
	BalanceAfter    decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"balance_after"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	ReferenceNo     string          `gorm:"type:varchar(100)" json:"reference_no,omitempty"`
	Remarks         string          `gorm:"type:text" json:"remarks,omitempty"`
	TransactionDate time.Time       `gorm:"not null;index:idx_account_transactions_date,priority:2" json:"transaction_date"`
	ProcessedBy     string          `gorm:"type:varchar(100);not null" json:"processed_by"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for AccountTransaction
func (t *AccountTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now().UTC()
	if t.TransactionDate.IsZero() {
		t.TransactionDate = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}

	if t.TransactionID == "" {
		t.TransactionID = GenerateTransactionID(t.AccountNo, t.TransactionDate)
	}

	return t.Validate()
}

// BeforeUpdate rejects every update; ledger entries are never rewritten.
func (t *AccountTransaction) BeforeUpdate(tx *gorm.DB) error {
	return ErrImmutableTransaction
}

// BeforeDelete rejects deletes for the same reason.
func (t *AccountTransaction) BeforeDelete(tx *gorm.DB) error {
	return ErrImmutableTransaction
}

// Validate validates the transaction fields
func (t *AccountTransaction) Validate() error {
	if t.AccountNo == "" {
		return errors.New("account number is required")
	}

	if _, ok := BalanceEffects[t.TransactionType]; !ok {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.LedgerSeq < 1 {
		return errors.New("ledger sequence must start at 1")
	}

	if !t.TransactionType.Effect().Apply(t.BalanceBefore, t.Amount).Equal(t.BalanceAfter) {
		return errors.New("balance after does not match transaction effect")
	}

	return nil
}

// TableName returns the table name for AccountTransaction
func (t *AccountTransaction) TableName() string {
	return "account_transactions"
}

// GenerateTransactionID builds TXN-{accountNo}-{epochMillis}-{8 random hex}.
func GenerateTransactionID(accountNo string, at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("TXN-%s-%d-%s", accountNo, at.UnixMilli(), suffix)
}
