package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fixed-deposit-core/internal/config"
	apperrors "fixed-deposit-core/internal/errors"
	"fixed-deposit-core/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	next int64
	err  error
}

func (s *stubStore) Next(context.Context, string, time.Time) (int64, error) {
	return s.next, s.err
}

func fixedGenerator(store *stubStore) *AccountNumberGenerator {
	g := NewAccountNumberGenerator(store, "FD").(*AccountNumberGenerator)
	g.now = func() time.Time { return time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC) }
	return g
}

func TestAccountNumberGenerator_Format(t *testing.T) {
	tests := []struct {
		seq  int64
		want string
	}{
		{seq: 10000002, want: "FD-BR001-20241231-10000002"},
		{seq: 7, want: "FD-BR001-20241231-00000007"},
		{seq: 99999999, want: "FD-BR001-20241231-99999999"},
	}

	for _, tt := range tests {
		accountNo, err := fixedGenerator(&stubStore{next: tt.seq}).Generate(context.Background(), "BR001")
		require.NoError(t, err)
		assert.Equal(t, tt.want, accountNo)
	}
}

func TestAccountNumberGenerator_Exhausted(t *testing.T) {
	_, err := fixedGenerator(&stubStore{next: 100000000}).Generate(context.Background(), "BR001")

	assert.Equal(t, apperrors.AccountNumberExhausted, apperrors.CodeOf(err))
}

func TestAccountNumberGenerator_StoreFailure(t *testing.T) {
	_, err := fixedGenerator(&stubStore{err: errors.New("redis down")}).Generate(context.Background(), "BR001")

	assert.Equal(t, apperrors.SystemInternalError, apperrors.CodeOf(err))
}

func TestAccountNumberGenerator_OrderedWithinBranchAndDay(t *testing.T) {
	g := NewAccountNumberGenerator(newCountingStore(10000001), "FD").(*AccountNumberGenerator)
	g.now = func() time.Time { return time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC) }

	var previous string
	seen := make(map[string]bool)
	for range 25 {
		accountNo, err := g.Generate(context.Background(), "BR001")
		require.NoError(t, err)
		assert.False(t, seen[accountNo], "duplicate %s", accountNo)
		assert.Greater(t, accountNo, previous)
		seen[accountNo] = true
		previous = accountNo
	}

	other, err := g.Generate(context.Background(), "BR002")
	require.NoError(t, err)
	assert.Equal(t, "FD-BR002-20240309-10000002", other)
}

func TestAccountNumberGenerator_LongestBranchFitsColumn(t *testing.T) {
	g := NewAccountNumberGenerator(&stubStore{next: 10000002}, strings.Repeat("P", config.MaxAccountPrefixLength)).(*AccountNumberGenerator)
	g.now = func() time.Time { return time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC) }

	accountNo, err := g.Generate(context.Background(), strings.Repeat("B", 20))

	require.NoError(t, err)
	assert.LessOrEqual(t, len(accountNo), models.AccountNoMaxLength)
	assert.Len(t, accountNo, 55)
}

func TestAccountNumberGenerator_TooLong(t *testing.T) {
	g := NewAccountNumberGenerator(&stubStore{next: 10000002}, strings.Repeat("P", 40)).(*AccountNumberGenerator)

	_, err := g.Generate(context.Background(), "BR001")

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.AccountInvalidData, appErr.Code)
	assert.Equal(t, "branch_code", appErr.Field)
}
