package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type product struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func TestInMemory_SetGetDelete(t *testing.T) {
	c := NewInMemory[product](time.Minute)
	defer c.Close()
	ctx := context.Background()

	_, ok := c.Get(ctx, "FD-STD")
	assert.False(t, ok)

	c.Set(ctx, "FD-STD", &product{Code: "FD-STD", Name: "Standard"})
	got, ok := c.Get(ctx, "FD-STD")
	require.True(t, ok)
	assert.Equal(t, "Standard", got.Name)

	c.Delete(ctx, "FD-STD")
	_, ok = c.Get(ctx, "FD-STD")
	assert.False(t, ok)
}

func TestInMemory_Expiry(t *testing.T) {
	c := NewInMemory[product](time.Minute)
	defer c.Close()
	ctx := context.Background()

	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set(ctx, "FD-STD", &product{Code: "FD-STD"})
	now = now.Add(2 * time.Minute)

	_, ok := c.Get(ctx, "FD-STD")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.sweep()
	assert.Equal(t, 0, c.Len())
}

func TestInMemory_ZeroTTLHasNoSweeper(t *testing.T) {
	c := NewInMemory[product](0)
	c.Close()
	c.Close()
}

func TestRedis_GetHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedis[product](client, "fd:product:", time.Minute, nil)

	mock.ExpectGet("fd:product:FD-STD").SetVal(`{"code":"FD-STD","name":"Standard"}`)

	got, ok := c.Get(context.Background(), "FD-STD")
	require.True(t, ok)
	assert.Equal(t, "Standard", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_GetMissAndError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedis[product](client, "fd:product:", time.Minute, nil)

	mock.ExpectGet("fd:product:MISSING").RedisNil()
	mock.ExpectGet("fd:product:BROKEN").SetErr(errors.New("connection reset"))
	mock.ExpectGet("fd:product:GARBAGE").SetVal("not-json")

	for _, key := range []string{"MISSING", "BROKEN", "GARBAGE"} {
		_, ok := c.Get(context.Background(), key)
		assert.False(t, ok, key)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_SetAndDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedis[product](client, "fd:product:", time.Minute, nil)

	mock.ExpectSet("fd:product:FD-STD", []byte(`{"code":"FD-STD","name":"Standard"}`), time.Minute).SetVal("OK")
	mock.ExpectDel("fd:product:FD-STD").SetVal(1)

	c.Set(context.Background(), "FD-STD", &product{Code: "FD-STD", Name: "Standard"})
	c.Delete(context.Background(), "FD-STD")

	assert.NoError(t, mock.ExpectationsWereMet())
}
