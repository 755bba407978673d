package services

import (
	"context"
	"time"

	"fixed-deposit-core/internal/models"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type AuditLogger struct {
	logger *zap.Logger
}

func NewAuditLogger(logger *zap.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger.Named("audit"),
	}
}

func (al *AuditLogger) LogAccountCreated(ctx context.Context, account *models.FdAccount) {
	al.logger.Info("account created",
		zap.String("event_type", "account_created"),
		zap.String("account_no", account.AccountNo),
		zap.String("customer_id", account.CustomerID),
		zap.String("product_code", account.ProductCode),
		zap.String("branch_code", account.BranchCode),
		zap.String("principal_amount", account.PrincipalAmount.StringFixed(2)),
		zap.String("maturity_amount", account.MaturityAmount.StringFixed(2)),
		zap.Int("tenure_months", account.TenureMonths),
		zap.String("created_by", account.CreatedBy),
		zap.Time("timestamp", time.Now()),
		zap.String("trace_id", traceID(ctx)),
	)
}

func (al *AuditLogger) LogAccountClosed(ctx context.Context, account *models.FdAccount) {
	al.logger.Info("account closed",
		zap.String("event_type", "account_closed"),
		zap.String("account_no", account.AccountNo),
		zap.String("closed_by", account.ClosedBy),
		zap.String("closure_reason", account.ClosureReason),
		zap.Time("timestamp", time.Now()),
		zap.String("trace_id", traceID(ctx)),
	)
}

func (al *AuditLogger) LogAccountStatusChange(ctx context.Context, accountNo, oldStatus, newStatus, actor string) {
	al.logger.Info("account status change",
		zap.String("event_type", "account_status_change"),
		zap.String("account_no", accountNo),
		zap.String("old_status", oldStatus),
		zap.String("new_status", newStatus),
		zap.String("actor", actor),
		zap.Time("timestamp", time.Now()),
		zap.String("trace_id", traceID(ctx)),
	)
}

func (al *AuditLogger) LogTransactionRecorded(ctx context.Context, transaction *models.AccountTransaction) {
	al.logger.Info("transaction recorded",
		zap.String("event_type", "transaction_recorded"),
		zap.String("transaction_id", transaction.TransactionID),
		zap.String("account_no", transaction.AccountNo),
		zap.Int64("ledger_seq", transaction.LedgerSeq),
		zap.String("transaction_type", string(transaction.TransactionType)),
		zap.String("amount", transaction.Amount.StringFixed(2)),
		zap.String("balance_before", transaction.BalanceBefore.StringFixed(2)),
		zap.String("balance_after", transaction.BalanceAfter.StringFixed(2)),
		zap.String("processed_by", transaction.ProcessedBy),
		zap.Time("timestamp", time.Now()),
		zap.String("trace_id", traceID(ctx)),
	)
}

func (al *AuditLogger) LogCalculationPerformed(ctx context.Context, calculation *models.FdCalculation) {
	al.logger.Info("calculation performed",
		zap.String("event_type", "calculation_performed"),
		zap.String("calculation_id", calculation.ID.String()),
		zap.String("customer_id", calculation.CustomerID),
		zap.String("product_code", calculation.ProductCode),
		zap.String("interest_rate", calculation.InterestRate.String()),
		zap.String("maturity_amount", calculation.MaturityAmount.StringFixed(2)),
		zap.Time("timestamp", time.Now()),
		zap.String("trace_id", traceID(ctx)),
	)
}

func (al *AuditLogger) LogAuthorizationDenied(ctx context.Context, username, capability, reason string) {
	al.logger.Warn("authorization denied",
		zap.String("event_type", "authorization_denied"),
		zap.String("username", username),
		zap.String("capability", capability),
		zap.String("reason", reason),
		zap.Time("timestamp", time.Now()),
		zap.String("trace_id", traceID(ctx)),
	)
}

func (al *AuditLogger) LogAccountNumberCollision(ctx context.Context, accountNo string, attempt int) {
	al.logger.Warn("account number collision",
		zap.String("event_type", "account_number_collision"),
		zap.String("account_no", accountNo),
		zap.Int("attempt", attempt),
		zap.Time("timestamp", time.Now()),
		zap.String("trace_id", traceID(ctx)),
	)
}

func (al *AuditLogger) LogLedgerConflict(ctx context.Context, accountNo string, attempt int) {
	al.logger.Warn("ledger conflict",
		zap.String("event_type", "ledger_conflict"),
		zap.String("account_no", accountNo),
		zap.Int("attempt", attempt),
		zap.Time("timestamp", time.Now()),
		zap.String("trace_id", traceID(ctx)),
	)
}

func traceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
