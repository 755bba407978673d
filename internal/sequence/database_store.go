package sequence

import (
	"context"
	"fmt"
	"time"

	"fixed-deposit-core/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DatabaseStore keeps one counter row per (branch, day) in account_sequences
// and increments it with an upsert, so concurrent processes sharing the
// database never see the same value.
type DatabaseStore struct {
	db   *gorm.DB
	base int64
}

func NewDatabaseStore(db *gorm.DB, base int64) *DatabaseStore {
	return &DatabaseStore{db: db, base: base}
}

func (s *DatabaseStore) Next(ctx context.Context, branchCode string, day time.Time) (int64, error) {
	businessDate := day.Format(DayFormat)
	var value int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		row := models.AccountSequence{
			BranchCode:   branchCode,
			BusinessDate: businessDate,
			LastValue:    1,
			UpdatedAt:    now,
		}

		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "branch_code"}, {Name: "business_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"last_value": gorm.Expr("account_sequences.last_value + 1"),
				"updated_at": now,
			}),
		}).Create(&row).Error
		if err != nil {
			return err
		}

		var current models.AccountSequence
		if err := tx.Where("branch_code = ? AND business_date = ?", branchCode, businessDate).
			First(&current).Error; err != nil {
			return err
		}
		value = current.LastValue
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to advance sequence for %s/%s: %w", branchCode, businessDate, err)
	}

	return s.base + value, nil
}
