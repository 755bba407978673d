package repositories

import (
	"context"
	"testing"
	"time"

	"fixed-deposit-core/internal/database"
	"fixed-deposit-core/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func newTestAccount(accountNo, customerID, branchCode string) *models.FdAccount {
	return &models.FdAccount{
		AccountNo:       accountNo,
		CustomerID:      customerID,
		ProductCode:     "FD-STD",
		PrincipalAmount: decimal.NewFromInt(100000),
		InterestRate:    decimal.RequireFromString("6.75"),
		TenureMonths:    24,
		MaturityAmount:  decimal.RequireFromString("113763.90"),
		MaturityDate:    time.Now().UTC().AddDate(0, 24, 0),
		BranchCode:      branchCode,
		CreatedBy:       "officer.one",
	}
}

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AccountRepositoryInterface
	ctx  context.Context
}

// SetupTest runs before each test in the suite
func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.ctx = context.Background()
}

// TearDownTest runs after each test in the suite
func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAccountRepositorySuite runs the test suite
func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) TestCreate() {
	account := newTestAccount("FD-BR001-20240309-10000002", "42", "BR001")

	err := s.repo.Create(s.ctx, account)
	s.NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.Equal(models.AccountStatusActive, account.Status)
	s.Equal(models.DefaultCurrency, account.Currency)
	s.Equal(int64(1), account.Version)
	s.NotZero(account.CreatedAt)
}

func (s *AccountRepositorySuite) TestCreate_DuplicateAccountNumber() {
	s.NoError(s.repo.Create(s.ctx, newTestAccount("FD-BR001-20240309-10000002", "42", "BR001")))

	err := s.repo.Create(s.ctx, newTestAccount("FD-BR001-20240309-10000002", "43", "BR001"))
	s.ErrorIs(err, ErrAccountNumberExists)
}

func (s *AccountRepositorySuite) TestCreate_InvalidAccountRejectedByHook() {
	account := newTestAccount("FD-BR001-20240309-10000002", "42", "BR001")
	account.MaturityAmount = decimal.NewFromInt(1)

	s.Error(s.repo.Create(s.ctx, account))
}

func (s *AccountRepositorySuite) TestGetByAccountNo() {
	account := newTestAccount("FD-BR001-20240309-10000002", "42", "BR001")
	s.Require().NoError(s.repo.Create(s.ctx, account))

	found, err := s.repo.GetByAccountNo(s.ctx, account.AccountNo)
	s.Require().NoError(err)
	s.Equal(account.ID, found.ID)
	s.Equal("100000.00", found.PrincipalAmount.StringFixed(2))
	s.Equal("6.75", found.InterestRate.StringFixed(2))

	_, err = s.repo.GetByAccountNo(s.ctx, "FD-NOPE")
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestGetByCustomerID_NewestFirst() {
	base := time.Now().UTC().Add(-time.Hour)
	for i, no := range []string{"FD-A-1", "FD-A-2", "FD-A-3"} {
		account := newTestAccount(no, "42", "BR001")
		account.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		s.Require().NoError(s.repo.Create(s.ctx, account))
	}
	s.Require().NoError(s.repo.Create(s.ctx, newTestAccount("FD-B-1", "99", "BR001")))

	accounts, err := s.repo.GetByCustomerID(s.ctx, "42")
	s.Require().NoError(err)
	s.Require().Len(accounts, 3)
	s.Equal("FD-A-3", accounts[0].AccountNo)
	s.Equal("FD-A-1", accounts[2].AccountNo)

	none, err := s.repo.GetByCustomerID(s.ctx, "nobody")
	s.NoError(err)
	s.Empty(none)
}

func (s *AccountRepositorySuite) TestExists() {
	s.Require().NoError(s.repo.Create(s.ctx, newTestAccount("FD-X-1", "42", "BR001")))

	exists, err := s.repo.Exists(s.ctx, "FD-X-1")
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.Exists(s.ctx, "FD-X-2")
	s.NoError(err)
	s.False(exists)
}

func (s *AccountRepositorySuite) TestCountByBranchAndDay() {
	day := time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		account := newTestAccount(gofakeit.UUID(), "42", "BR001")
		account.CreatedAt = day.Add(time.Duration(i) * time.Hour)
		s.Require().NoError(s.repo.Create(s.ctx, account))
	}
	yesterday := newTestAccount(gofakeit.UUID(), "42", "BR001")
	yesterday.CreatedAt = day.AddDate(0, 0, -1)
	s.Require().NoError(s.repo.Create(s.ctx, yesterday))
	otherBranch := newTestAccount(gofakeit.UUID(), "42", "BR002")
	otherBranch.CreatedAt = day
	s.Require().NoError(s.repo.Create(s.ctx, otherBranch))

	count, err := s.repo.CountByBranchAndDay(s.ctx, "BR001", day)
	s.NoError(err)
	s.Equal(int64(3), count)

	count, err = s.repo.CountByBranchAndDay(s.ctx, "BR003", day)
	s.NoError(err)
	s.Zero(count)
}

func (s *AccountRepositorySuite) TestUpdateWithVersion() {
	account := newTestAccount("FD-V-1", "42", "BR001")
	s.Require().NoError(s.repo.Create(s.ctx, account))

	stale, err := s.repo.GetByAccountNo(s.ctx, "FD-V-1")
	s.Require().NoError(err)

	s.Require().NoError(account.Close("officer.two", "Customer request", time.Now()))
	s.Require().NoError(s.repo.UpdateWithVersion(s.ctx, account))
	s.Equal(int64(2), account.Version)

	stored, err := s.repo.GetByAccountNo(s.ctx, "FD-V-1")
	s.Require().NoError(err)
	s.Equal(models.AccountStatusClosed, stored.Status)
	s.Equal("officer.two", stored.ClosedBy)
	s.Equal("Customer request", stored.ClosureReason)
	s.NotNil(stored.ClosedAt)
	s.Equal(int64(2), stored.Version)

	s.Require().NoError(stale.Suspend())
	s.ErrorIs(s.repo.UpdateWithVersion(s.ctx, stale), ErrStaleAccount)
}
