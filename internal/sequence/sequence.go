// Package sequence allocates the per-branch, per-day component of account
// numbers.
package sequence

import (
	"context"
	"time"
)

// DayFormat is the business-day key embedded in account numbers.
const DayFormat = "20060102"

// Store hands out sequence values for a branch on a business day. Values
// from one store are strictly increasing for the same (branch, day).
type Store interface {
	Next(ctx context.Context, branchCode string, day time.Time) (int64, error)
}

// DailyCounter reports how many accounts a branch opened on a day.
type DailyCounter interface {
	CountByBranchAndDay(ctx context.Context, branchCode string, day time.Time) (int64, error)
}
