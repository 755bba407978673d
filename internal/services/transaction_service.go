package services

import (
	"context"
	"errors"
	"time"

	"fixed-deposit-core/internal/config"
	"fixed-deposit-core/internal/dto"
	apperrors "fixed-deposit-core/internal/errors"
	"fixed-deposit-core/internal/models"
	"fixed-deposit-core/internal/repositories"
	"fixed-deposit-core/internal/validation"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	accounts     repositories.AccountRepositoryInterface
	transactions repositories.TransactionRepositoryInterface
	audit        AuditLoggerInterface
	metrics      MetricsRecorderInterface
	cfg          config.AccountsConfig
	logger       *zap.Logger
}

// NewTransactionService creates the ledger service
func NewTransactionService(
	accounts repositories.AccountRepositoryInterface,
	transactions repositories.TransactionRepositoryInterface,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg config.AccountsConfig,
	logger *zap.Logger,
) TransactionServiceInterface {
	return &transactionService{
		accounts:     accounts,
		transactions: transactions,
		audit:        audit,
		metrics:      metrics,
		cfg:          cfg,
		logger:       logger,
	}
}

// RecordTransaction appends one entry to the account's ledger. The balance
// before the entry is the previous entry's balance after, or the principal
// for the first entry.
func (s *transactionService) RecordTransaction(ctx context.Context, caller Caller, accountNo string, req dto.TransactionRequest) (txn *models.AccountTransaction, err error) {
	ctx, span := startSpan(ctx, "TransactionService.RecordTransaction",
		attribute.String("account.no", accountNo),
		attribute.String("transaction.type", req.TransactionType),
	)
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("record_transaction", time.Since(start))
		endSpan(span, err)
	}()

	if result := Authorize(caller, CapabilityRecordTransaction); !result.Allowed {
		s.audit.LogAuthorizationDenied(ctx, caller.Username, string(CapabilityRecordTransaction), result.Reason)
		return nil, result.Err()
	}

	if err := validation.GetValidator().Struct(&req, apperrors.TransactionInvalidType); err != nil {
		return nil, err
	}

	txType, err := models.ParseTransactionType(req.TransactionType)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.TransactionInvalidType, err, "").WithField("transaction_type", req.TransactionType)
	}

	build := func(account *models.FdAccount, last *models.AccountTransaction) (*models.AccountTransaction, error) {
		if account.IsClosed() {
			return nil, apperrors.Newf(apperrors.AccountInvalidData, "Cannot record transaction on closed account: %s", accountNo)
		}

		balance := account.PrincipalAmount
		if last != nil {
			balance = last.BalanceAfter
		}

		return &models.AccountTransaction{
			TransactionType: txType,
			Amount:          req.Amount,
			BalanceBefore:   balance,
			BalanceAfter:    txType.Effect().Apply(balance, req.Amount),
			Description:     req.Description,
			ReferenceNo:     req.ReferenceNo,
			Remarks:         req.Remarks,
			ProcessedBy:     caller.Username,
		}, nil
	}

	attempts := max(s.cfg.LedgerAttempts, 1)
	for attempt := 1; attempt <= attempts; attempt++ {
		txn, err = s.transactions.AppendWithLock(ctx, accountNo, build)
		if err == nil {
			break
		}
		if !errors.Is(err, repositories.ErrLedgerConflict) {
			return nil, s.appendError(accountNo, err)
		}

		s.audit.LogLedgerConflict(ctx, accountNo, attempt)
		s.metrics.IncrementCounter(MetricLedgerConflict, nil)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.TransactionConflict, err, "")
	}

	s.audit.LogTransactionRecorded(ctx, txn)
	s.metrics.IncrementCounter(MetricTransactionRecorded, map[string]string{"type": string(txn.TransactionType)})

	return txn, nil
}

func (s *transactionService) appendError(accountNo string, err error) error {
	if _, ok := apperrors.As(err); ok {
		return err
	}
	if errors.Is(err, repositories.ErrAccountNotFound) {
		return apperrors.Newf(apperrors.AccountNotFound, "Account not found: %s", accountNo)
	}
	s.logger.Error("failed to record transaction", zap.String("account_no", accountNo), zap.Error(err))
	return apperrors.Internal(err, "Failed to record transaction")
}

// GetAccountTransactions returns the whole ledger, newest first
func (s *transactionService) GetAccountTransactions(ctx context.Context, accountNo string) ([]models.AccountTransaction, error) {
	if err := s.ensureAccount(ctx, accountNo); err != nil {
		return nil, err
	}

	transactions, err := s.transactions.GetByAccountNo(ctx, accountNo)
	if err != nil {
		return nil, apperrors.Internal(err, "Failed to load transactions")
	}
	return transactions, nil
}

// GetAccountTransactionsByDateRange returns entries dated within [from, to], newest first
func (s *transactionService) GetAccountTransactionsByDateRange(ctx context.Context, accountNo string, from, to time.Time) ([]models.AccountTransaction, error) {
	if from.After(to) {
		return nil, apperrors.New(apperrors.ValidationInvalidDate, "Start date must not be after end date").
			WithField("from", to.Format(time.RFC3339))
	}

	if err := s.ensureAccount(ctx, accountNo); err != nil {
		return nil, err
	}

	transactions, err := s.transactions.GetByDateRange(ctx, accountNo, from, to)
	if err != nil {
		return nil, apperrors.Internal(err, "Failed to load transactions")
	}
	return transactions, nil
}

// GetCurrentBalance derives the balance from the ledger head, or the
// principal when nothing has been recorded
func (s *transactionService) GetCurrentBalance(ctx context.Context, accountNo string) (decimal.Decimal, error) {
	account, err := s.accounts.GetByAccountNo(ctx, accountNo)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return decimal.Zero, apperrors.Newf(apperrors.AccountNotFound, "Account not found: %s", accountNo)
		}
		return decimal.Zero, apperrors.Internal(err, "Failed to load account")
	}

	last, err := s.transactions.GetLatest(ctx, accountNo)
	if err != nil {
		return decimal.Zero, apperrors.Internal(err, "Failed to load latest transaction")
	}
	if last == nil {
		return account.PrincipalAmount, nil
	}
	return last.BalanceAfter, nil
}

func (s *transactionService) ensureAccount(ctx context.Context, accountNo string) error {
	exists, err := s.accounts.Exists(ctx, accountNo)
	if err != nil {
		return apperrors.Internal(err, "Failed to load account")
	}
	if !exists {
		return apperrors.Newf(apperrors.AccountNotFound, "Account not found: %s", accountNo)
	}
	return nil
}
