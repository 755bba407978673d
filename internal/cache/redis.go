package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to redis and verifies the connection with a ping.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return rdb, nil
}

// Redis is a JSON-backed cache stored under prefix+key. A zero TTL keeps
// keys until they are deleted.
type Redis[T any] struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedis creates a Redis cache using client.
func NewRedis[T any](client redis.Cmdable, prefix string, ttl time.Duration, log *zap.Logger) *Redis[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Redis[T]{client: client, prefix: prefix, ttl: ttl, log: log}
}

// Get returns (nil, false) on any miss or decode error.
func (c *Redis[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache read failed", zap.String("key", c.prefix+key), zap.Error(err))
		}
		return nil, false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		c.log.Warn("cache entry undecodable", zap.String("key", c.prefix+key), zap.Error(err))
		return nil, false
	}
	return &v, true
}

// Set stores value. Write failures are logged, not returned.
func (c *Redis[T]) Set(ctx context.Context, key string, value *T) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("cache marshal failed", zap.String("key", c.prefix+key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", zap.String("key", c.prefix+key), zap.Error(err))
	}
}

// Delete removes key.
func (c *Redis[T]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		c.log.Warn("cache delete failed", zap.String("key", c.prefix+key), zap.Error(err))
	}
}
