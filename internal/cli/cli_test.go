package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fixed-deposit-core/internal/dto"
	apperrors "fixed-deposit-core/internal/errors"
	"fixed-deposit-core/internal/models"
	"fixed-deposit-core/internal/services"
	"fixed-deposit-core/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type CLISuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	accounts     *service_mocks.MockAccountServiceInterface
	calculations *service_mocks.MockCalculationServiceInterface
	transactions *service_mocks.MockTransactionServiceInterface
	health       *service_mocks.MockHealthServiceInterface
	loads        int
}

func (s *CLISuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accounts = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.calculations = service_mocks.NewMockCalculationServiceInterface(s.ctrl)
	s.transactions = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.health = service_mocks.NewMockHealthServiceInterface(s.ctrl)
	s.loads = 0
}

func (s *CLISuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) load(context.Context, string) (*App, error) {
	s.loads++
	return &App{
		Logger:       zap.NewNop(),
		Accounts:     s.accounts,
		Calculations: s.calculations,
		Transactions: s.transactions,
		Health:       s.health,
	}, nil
}

// run executes fdctl with args and returns stdout, stderr and the exit code.
func (s *CLISuite) run(args ...string) (string, string, int) {
	rt := &runtime{load: s.load}
	defer rt.close()

	var stdout, stderr bytes.Buffer
	root := newRootCommand(rt)
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	code := exitOK
	if err := root.ExecuteContext(context.Background()); err != nil {
		code = renderError(&stderr, err)
	}
	return stdout.String(), stderr.String(), code
}

func (s *CLISuite) TestAccountCreate() {
	officer := services.Caller{Username: "officer.one", Roles: []string{"BANK_OFFICER", "ADMIN"}}
	s.accounts.EXPECT().CreateAccount(gomock.Any(), officer, dto.CreateAccountRequest{
		CustomerID:      "42",
		ProductCode:     "FD-STANDARD",
		PrincipalAmount: decimal.RequireFromString("100000"),
		InterestRate:    decimal.RequireFromString("6.75"),
		TenureMonths:    24,
		BranchCode:      "BR001",
	}).Return(&models.FdAccount{AccountNo: "FD-BR001-20240309-10000002", Status: models.AccountStatusActive}, nil)

	stdout, _, code := s.run("account", "create",
		"--user", "officer.one", "--roles", "BANK_OFFICER,ADMIN",
		"--customer", "42", "--product", "FD-STANDARD", "--principal", "100000",
		"--rate", "6.75", "--tenure", "24", "--branch", "BR001")

	s.Equal(exitOK, code)
	var account models.FdAccount
	s.Require().NoError(json.Unmarshal([]byte(stdout), &account))
	s.Equal("FD-BR001-20240309-10000002", account.AccountNo)
	s.Equal(1, s.loads)
}

func (s *CLISuite) TestAccountCreate_MissingFlagIsUsageError() {
	_, stderr, code := s.run("account", "create", "--customer", "42")

	s.Equal(exitInvalidData, code)
	s.Contains(stderr, "required flag")
	s.Equal(0, s.loads)
}

func (s *CLISuite) TestAccountCreate_BadDecimal() {
	_, stderr, code := s.run("account", "create",
		"--customer", "42", "--product", "FD-STANDARD", "--principal", "lots",
		"--rate", "6.75", "--tenure", "24", "--branch", "BR001")

	s.Equal(exitInvalidData, code)
	s.Contains(stderr, string(apperrors.ValidationInvalidFormat))
	s.Equal(0, s.loads)
}

func (s *CLISuite) TestServiceErrorsRenderEnvelope() {
	s.accounts.EXPECT().CloseAccount(gomock.Any(), gomock.Any(), "FD-1", dto.CloseAccountRequest{ClosureReason: "done"}).
		Return(nil, apperrors.Newf(apperrors.AccountAlreadyClosed, "Account is already closed: %s", "FD-1"))

	_, stderr, code := s.run("account", "close", "FD-1", "--reason", "done", "--user", "officer.one", "--roles", "ADMIN")

	s.Equal(exitConflict, code)
	var envelope apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal([]byte(stderr), &envelope))
	s.Equal(string(apperrors.AccountAlreadyClosed), envelope.Error.Code)
	s.Equal("Account is already closed: FD-1", envelope.Error.Message)
	s.Equal(string(apperrors.KindConflict), envelope.Error.Kind)
}

func (s *CLISuite) TestExitCodesByKind() {
	tests := []struct {
		err  error
		code int
	}{
		{apperrors.New(apperrors.AccountNotFound, "Account not found: X"), exitNotFound},
		{apperrors.New(apperrors.AuthInsufficientPermission, ""), exitUnauthorized},
		{apperrors.ServiceIntegration(errors.New("down"), "Failed to validate customer with Customer Service"), exitServiceIntegration},
		{apperrors.Internal(errors.New("boom"), "Failed to save account"), exitInternal},
	}

	for _, tt := range tests {
		s.accounts.EXPECT().GetAccount(gomock.Any(), "X").Return(nil, tt.err)
		_, _, code := s.run("account", "get", "X")
		s.Equal(tt.code, code, "%v", tt.err)
	}
}

func (s *CLISuite) TestAccountStatusCommands() {
	s.accounts.EXPECT().SuspendAccount(gomock.Any(), gomock.Any(), "FD-1", "KYC").
		Return(&models.FdAccount{AccountNo: "FD-1", Status: models.AccountStatusSuspended}, nil)
	s.accounts.EXPECT().ReactivateAccount(gomock.Any(), gomock.Any(), "FD-1", "").
		Return(&models.FdAccount{AccountNo: "FD-1", Status: models.AccountStatusActive}, nil)
	s.accounts.EXPECT().MatureAccount(gomock.Any(), gomock.Any(), "FD-1").
		Return(&models.FdAccount{AccountNo: "FD-1", Status: models.AccountStatusMatured}, nil)

	stdout, _, code := s.run("account", "suspend", "FD-1", "--remarks", "KYC")
	s.Equal(exitOK, code)
	s.Contains(stdout, models.AccountStatusSuspended)

	stdout, _, _ = s.run("account", "reactivate", "FD-1")
	s.Contains(stdout, models.AccountStatusActive)

	stdout, _, _ = s.run("account", "mature", "FD-1")
	s.Contains(stdout, models.AccountStatusMatured)
}

func (s *CLISuite) TestCalcRun() {
	frequency := 12
	s.calculations.EXPECT().CalculateFd(gomock.Any(), dto.CalculationRequest{
		CustomerID:           "42",
		ProductCode:          "FD-STANDARD",
		PrincipalAmount:      decimal.RequireFromString("250000"),
		TenureMonths:         18,
		CompoundingFrequency: &frequency,
	}).Return(&models.FdCalculation{MaturityAmount: decimal.RequireFromString("275530.36")}, nil)

	stdout, _, code := s.run("calc", "run", "--customer", "42", "--product", "FD-STANDARD",
		"--principal", "250000", "--tenure", "18", "--frequency", "12")

	s.Equal(exitOK, code)
	s.Contains(stdout, "275530.36")
}

func (s *CLISuite) TestCalcRun_DefaultFrequencyLeftToService() {
	s.calculations.EXPECT().CalculateFd(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req dto.CalculationRequest) (*models.FdCalculation, error) {
			s.Nil(req.CompoundingFrequency)
			return &models.FdCalculation{}, nil
		})

	_, _, code := s.run("calc", "run", "--customer", "42", "--product", "FD-STANDARD",
		"--principal", "100000", "--tenure", "12")

	s.Equal(exitOK, code)
}

func (s *CLISuite) TestCalcGetAndRecent() {
	id := uuid.New()
	s.calculations.EXPECT().GetCalculationByID(gomock.Any(), id).Return(&models.FdCalculation{ID: id}, nil)
	s.calculations.EXPECT().GetRecentCalculations(gomock.Any(), "42", defaultRecentDays).Return(nil, nil)

	stdout, _, code := s.run("calc", "get", id.String())
	s.Equal(exitOK, code)
	s.Contains(stdout, id.String())

	_, _, code = s.run("calc", "recent", "--customer", "42")
	s.Equal(exitOK, code)

	_, stderr, code := s.run("calc", "get", "not-a-uuid")
	s.Equal(exitInvalidData, code)
	s.Contains(stderr, "Invalid calculation id")
}

func (s *CLISuite) TestTxnRecordAndBalance() {
	caller := services.Caller{Username: "teller", Roles: nil}
	s.transactions.EXPECT().RecordTransaction(gomock.Any(), caller, "FD-1", dto.TransactionRequest{
		TransactionType: "DEPOSIT",
		Amount:          decimal.RequireFromString("10000"),
		ReferenceNo:     "REF-9",
	}).Return(&models.AccountTransaction{AccountNo: "FD-1", LedgerSeq: 1}, nil)
	s.transactions.EXPECT().GetCurrentBalance(gomock.Any(), "FD-1").Return(decimal.RequireFromString("110000"), nil)

	_, _, code := s.run("txn", "record", "FD-1", "--user", "teller", "--type", "DEPOSIT", "--amount", "10000", "--reference", "REF-9")
	s.Equal(exitOK, code)

	stdout, _, code := s.run("txn", "balance", "FD-1")
	s.Equal(exitOK, code)
	var view balanceView
	s.Require().NoError(json.Unmarshal([]byte(stdout), &view))
	s.Equal("FD-1", view.AccountNo)
	s.True(decimal.RequireFromString("110000").Equal(view.Balance))
}

func (s *CLISuite) TestTxnRange_PlainDatesCoverWholeDays() {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	s.transactions.EXPECT().GetAccountTransactionsByDateRange(gomock.Any(), "FD-1", from, to).Return([]models.AccountTransaction{}, nil)

	stdout, _, code := s.run("txn", "range", "FD-1", "--from", "2024-03-01", "--to", "2024-03-31")

	s.Equal(exitOK, code)
	s.Equal("[]\n", stdout)
}

func (s *CLISuite) TestHealth() {
	s.health.EXPECT().Check(gomock.Any()).Return(&services.HealthReport{
		ServiceName: "fixed-deposit-core",
		Status:      services.HealthStatusHealthy,
	})

	stdout, _, code := s.run("health")

	s.Equal(exitOK, code)
	s.Contains(stdout, services.HealthStatusHealthy)
}

func (s *CLISuite) TestLoaderFailureIsConfigurationError() {
	rt := &runtime{load: func(context.Context, string) (*App, error) { return nil, errors.New("bad config") }}
	root := newRootCommand(rt)
	root.SetArgs([]string{"health"})
	var stderr bytes.Buffer
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())

	s.Equal(apperrors.SystemConfigurationError, apperrors.CodeOf(err))
	s.Equal(exitInternal, renderError(&stderr, err))
}

func (s *CLISuite) TestSplitRoles() {
	s.Equal([]string{"BANK_OFFICER", "ADMIN"}, splitRoles(" BANK_OFFICER, ,ADMIN "))
	s.Nil(splitRoles(""))
}
