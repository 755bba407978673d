package sequence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fixed-deposit-core/internal/database"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDailyCounter struct {
	count int64
	err   error
}

func (f *fakeDailyCounter) CountByBranchAndDay(ctx context.Context, branchCode string, day time.Time) (int64, error) {
	return f.count, f.err
}

var testDay = time.Date(2024, 3, 9, 11, 30, 0, 0, time.UTC)

func TestProcessCounter_Next(t *testing.T) {
	daily := &fakeDailyCounter{}
	c := NewProcessCounter(10000001, daily)

	first, err := c.Next(context.Background(), "BR001", testDay)
	require.NoError(t, err)
	assert.Equal(t, int64(10000002), first)

	daily.count = 1
	second, err := c.Next(context.Background(), "BR001", testDay)
	require.NoError(t, err)
	assert.Equal(t, int64(10000004), second)
	assert.Greater(t, second, first)
}

func TestProcessCounter_CountFailure(t *testing.T) {
	c := NewProcessCounter(10000001, &fakeDailyCounter{err: errors.New("db down")})

	_, err := c.Next(context.Background(), "BR001", testDay)
	assert.ErrorContains(t, err, "db down")
}

func TestProcessCounter_ConcurrentValuesAreDistinct(t *testing.T) {
	c := NewProcessCounter(10000001, &fakeDailyCounter{})

	const workers = 50
	values := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Next(context.Background(), "BR001", testDay)
			if err == nil {
				values <- v
			}
		}()
	}
	wg.Wait()
	close(values)

	seen := make(map[int64]bool)
	for v := range values {
		assert.False(t, seen[v], "duplicate value %d", v)
		seen[v] = true
	}
	assert.Len(t, seen, workers)
}

func TestDatabaseStore_Next(t *testing.T) {
	db := database.SetupTestDB(t)
	store := NewDatabaseStore(db.DB, 10000001)
	ctx := context.Background()

	var got []int64
	for i := 0; i < 3; i++ {
		v, err := store.Next(ctx, "BR001", testDay)
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int64{10000002, 10000003, 10000004}, got)

	other, err := store.Next(ctx, "BR002", testDay)
	require.NoError(t, err)
	assert.Equal(t, int64(10000002), other)

	nextDay, err := store.Next(ctx, "BR001", testDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(10000002), nextDay)

	var rows int64
	require.NoError(t, db.Table("account_sequences").Count(&rows).Error)
	assert.Equal(t, int64(3), rows)
}

func TestRedisStore_Next(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client, 10000001)
	key := "fd:seq:BR001:20240309"

	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, RedisKeyTTL).SetVal(true)
	mock.ExpectIncr(key).SetVal(2)

	first, err := store.Next(context.Background(), "BR001", testDay)
	require.NoError(t, err)
	second, err := store.Next(context.Background(), "BR001", testDay)
	require.NoError(t, err)

	assert.Equal(t, int64(10000002), first)
	assert.Equal(t, int64(10000003), second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_IncrFailure(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client, 10000001)

	mock.ExpectIncr(Key("BR001", testDay)).SetErr(errors.New("READONLY"))

	_, err := store.Next(context.Background(), "BR001", testDay)
	assert.ErrorContains(t, err, "READONLY")
}
