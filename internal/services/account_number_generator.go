package services

import (
	"context"
	"fmt"
	"time"

	apperrors "fixed-deposit-core/internal/errors"
	"fixed-deposit-core/internal/models"
	"fixed-deposit-core/internal/sequence"
)

// maxSequence is the largest value that fits the eight-digit suffix.
const maxSequence = 99999999

// AccountNumberGenerator formats {prefix}-{branch}-{yyyyMMdd}-{sequence}
// account numbers from a sequence.Store.
type AccountNumberGenerator struct {
	store  sequence.Store
	prefix string
	now    func() time.Time
}

func NewAccountNumberGenerator(store sequence.Store, prefix string) AccountNumberGeneratorInterface {
	return &AccountNumberGenerator{
		store:  store,
		prefix: prefix,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (g *AccountNumberGenerator) Generate(ctx context.Context, branchCode string) (string, error) {
	day := g.now()

	seq, err := g.store.Next(ctx, branchCode, day)
	if err != nil {
		return "", apperrors.Internal(err, "Failed to allocate account sequence")
	}
	if seq > maxSequence {
		return "", apperrors.Newf(apperrors.AccountNumberExhausted,
			"Account sequence for branch %s on %s is exhausted", branchCode, day.Format(sequence.DayFormat))
	}

	accountNo := fmt.Sprintf("%s-%s-%s-%08d", g.prefix, branchCode, day.Format(sequence.DayFormat), seq)
	if len(accountNo) > models.AccountNoMaxLength {
		return "", apperrors.Newf(apperrors.AccountInvalidData,
			"Account number %s exceeds %d characters", accountNo, models.AccountNoMaxLength).
			WithField("branch_code", branchCode)
	}
	return accountNo, nil
}
