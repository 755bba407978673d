package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"fixed-deposit-core/internal/database"
	"fixed-deposit-core/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type TransactionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     *transactionRepository
	accounts AccountRepositoryInterface
	account  *models.FdAccount
	clock    time.Time
	ctx      context.Context
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB).(*transactionRepository)
	s.clock = time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	s.repo.now = func() time.Time { return s.clock }
	s.accounts = NewAccountRepository(s.db.DB)
	s.ctx = context.Background()

	s.account = newTestAccount("FD-BR001-20240309-10000002", "42", "BR001")
	s.Require().NoError(s.accounts.Create(s.ctx, s.account))
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

// credit builds a deposit of amount on top of the current balance.
func credit(amount int64) LedgerBuilder {
	return func(account *models.FdAccount, last *models.AccountTransaction) (*models.AccountTransaction, error) {
		before := account.PrincipalAmount
		if last != nil {
			before = last.BalanceAfter
		}
		value := decimal.NewFromInt(amount)
		return &models.AccountTransaction{
			TransactionType: models.TransactionTypeDeposit,
			Amount:          value,
			BalanceBefore:   before,
			BalanceAfter:    before.Add(value),
			ProcessedBy:     "teller",
		}, nil
	}
}

func (s *TransactionRepositorySuite) TestAppendWithLock_AssignsSequenceAndBumpsVersion() {
	first, err := s.repo.AppendWithLock(s.ctx, s.account.AccountNo, credit(100))
	s.Require().NoError(err)
	s.clock = s.clock.Add(time.Second)
	second, err := s.repo.AppendWithLock(s.ctx, s.account.AccountNo, credit(50))
	s.Require().NoError(err)

	s.Equal(int64(1), first.LedgerSeq)
	s.Equal(int64(2), second.LedgerSeq)
	s.Equal("100100.00", first.BalanceAfter.StringFixed(2))
	s.Equal("100150.00", second.BalanceAfter.StringFixed(2))
	s.NotEqual(first.TransactionID, second.TransactionID)
	s.Contains(first.TransactionID, "TXN-"+s.account.AccountNo+"-")

	account, err := s.accounts.GetByAccountNo(s.ctx, s.account.AccountNo)
	s.Require().NoError(err)
	s.Equal(int64(3), account.Version)
}

func (s *TransactionRepositorySuite) TestAppendWithLock_StalledClockStaysOrdered() {
	first, err := s.repo.AppendWithLock(s.ctx, s.account.AccountNo, credit(1))
	s.Require().NoError(err)
	second, err := s.repo.AppendWithLock(s.ctx, s.account.AccountNo, credit(1))
	s.Require().NoError(err)

	s.clock = s.clock.Add(-time.Hour)
	third, err := s.repo.AppendWithLock(s.ctx, s.account.AccountNo, credit(1))
	s.Require().NoError(err)

	s.True(second.TransactionDate.After(first.TransactionDate))
	s.True(third.TransactionDate.After(second.TransactionDate))
}

func (s *TransactionRepositorySuite) TestAppendWithLock_UnknownAccount() {
	_, err := s.repo.AppendWithLock(s.ctx, "FD-NOPE", credit(1))
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *TransactionRepositorySuite) TestAppendWithLock_BuilderErrorRollsBack() {
	boom := errors.New("rejected")
	_, err := s.repo.AppendWithLock(s.ctx, s.account.AccountNo, func(*models.FdAccount, *models.AccountTransaction) (*models.AccountTransaction, error) {
		return nil, boom
	})
	s.ErrorIs(err, boom)

	entries, err := s.repo.GetByAccountNo(s.ctx, s.account.AccountNo)
	s.NoError(err)
	s.Empty(entries)

	account, err := s.accounts.GetByAccountNo(s.ctx, s.account.AccountNo)
	s.Require().NoError(err)
	s.Equal(int64(1), account.Version)
}

func (s *TransactionRepositorySuite) TestAppendWithLock_DuplicateSequenceIsConflict() {
	_, err := s.repo.AppendWithLock(s.ctx, s.account.AccountNo, credit(1))
	s.Require().NoError(err)

	// A second writer that already read an empty ledger tries to take position 1.
	dup := &models.AccountTransaction{
		AccountNo:       s.account.AccountNo,
		LedgerSeq:       1,
		TransactionType: models.TransactionTypeDeposit,
		Amount:          decimal.NewFromInt(1),
		BalanceBefore:   decimal.NewFromInt(100000),
		BalanceAfter:    decimal.NewFromInt(100001),
		ProcessedBy:     "teller",
	}
	err = s.db.Create(dup).Error
	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *TransactionRepositorySuite) TestAppendedEntriesAreImmutable() {
	entry, err := s.repo.AppendWithLock(s.ctx, s.account.AccountNo, credit(10))
	s.Require().NoError(err)

	entry.Description = "edited"
	s.ErrorIs(s.db.Save(entry).Error, models.ErrImmutableTransaction)
	s.ErrorIs(s.db.Delete(entry).Error, models.ErrImmutableTransaction)
}

func (s *TransactionRepositorySuite) TestGetByAccountNo_NewestFirst() {
	for i := 0; i < 3; i++ {
		_, err := s.repo.AppendWithLock(s.ctx, s.account.AccountNo, credit(int64(i+1)))
		s.Require().NoError(err)
		s.clock = s.clock.Add(time.Minute)
	}

	entries, err := s.repo.GetByAccountNo(s.ctx, s.account.AccountNo)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Equal(int64(3), entries[0].LedgerSeq)
	s.Equal(int64(1), entries[2].LedgerSeq)

	latest, err := s.repo.GetLatest(s.ctx, s.account.AccountNo)
	s.Require().NoError(err)
	s.Equal(entries[0].TransactionID, latest.TransactionID)
	s.Equal("100006.00", latest.BalanceAfter.StringFixed(2))
}

func (s *TransactionRepositorySuite) TestGetLatest_EmptyLedger() {
	latest, err := s.repo.GetLatest(s.ctx, s.account.AccountNo)
	s.NoError(err)
	s.Nil(latest)
}

func (s *TransactionRepositorySuite) TestGetByDateRange() {
	start := s.clock
	for i := 0; i < 4; i++ {
		_, err := s.repo.AppendWithLock(s.ctx, s.account.AccountNo, credit(1))
		s.Require().NoError(err)
		s.clock = s.clock.Add(24 * time.Hour)
	}

	entries, err := s.repo.GetByDateRange(s.ctx, s.account.AccountNo, start.Add(12*time.Hour), start.Add(48*time.Hour))
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(int64(3), entries[0].LedgerSeq)
	s.Equal(int64(2), entries[1].LedgerSeq)
}
