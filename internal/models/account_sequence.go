package models

import "time"

// AccountSequence is the persisted allocation counter for one branch on one
// business day (yyyyMMdd).
type AccountSequence struct {
	BranchCode   string    `gorm:"type:varchar(20);primaryKey" json:"branch_code"`
	BusinessDate string    `gorm:"type:varchar(8);primaryKey" json:"business_date"`
	LastValue    int64     `gorm:"not null;default:0" json:"last_value"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for AccountSequence
func (s *AccountSequence) TableName() string {
	return "account_sequences"
}
