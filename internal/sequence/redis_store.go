package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKeyTTL outlives the business day the key belongs to.
const RedisKeyTTL = 48 * time.Hour

// RedisStore increments fd:seq:{branch}:{yyyyMMdd} in redis.
type RedisStore struct {
	client redis.Cmdable
	base   int64
}

func NewRedisStore(client redis.Cmdable, base int64) *RedisStore {
	return &RedisStore{client: client, base: base}
}

// Key returns the redis key holding the counter for branchCode on day.
func Key(branchCode string, day time.Time) string {
	return fmt.Sprintf("fd:seq:%s:%s", branchCode, day.Format(DayFormat))
}

func (s *RedisStore) Next(ctx context.Context, branchCode string, day time.Time) (int64, error) {
	key := Key(branchCode, day)

	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}

	if n == 1 {
		if err := s.client.Expire(ctx, key, RedisKeyTTL).Err(); err != nil {
			return 0, fmt.Errorf("failed to set expiry on %s: %w", key, err)
		}
	}

	return s.base + n, nil
}
