package sequence

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// ProcessCounter is an in-process counter offset by the number of accounts
// already opened today. It is unique only within one process; the unique
// index on account numbers catches collisions across processes.
type ProcessCounter struct {
	counter atomic.Int64
	daily   DailyCounter
}

// NewProcessCounter seeds the counter at base.
func NewProcessCounter(base int64, daily DailyCounter) *ProcessCounter {
	c := &ProcessCounter{daily: daily}
	c.counter.Store(base)
	return c
}

func (c *ProcessCounter) Next(ctx context.Context, branchCode string, day time.Time) (int64, error) {
	next := c.counter.Add(1)

	today, err := c.daily.CountByBranchAndDay(ctx, branchCode, day)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts for branch %s: %w", branchCode, err)
	}

	return next + today, nil
}
