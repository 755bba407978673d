package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixed-deposit-core/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCalculationNotFound = errors.New("calculation not found")

// calculationRepository implements CalculationRepositoryInterface
type calculationRepository struct {
	db *gorm.DB
}

// NewCalculationRepository creates a new calculation repository
func NewCalculationRepository(db *gorm.DB) CalculationRepositoryInterface {
	return &calculationRepository{db: db}
}

func (r *calculationRepository) Create(ctx context.Context, calculation *models.FdCalculation) error {
	if err := r.db.WithContext(ctx).Create(calculation).Error; err != nil {
		return fmt.Errorf("failed to create calculation: %w", err)
	}
	return nil
}

func (r *calculationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FdCalculation, error) {
	var calculation models.FdCalculation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&calculation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCalculationNotFound
		}
		return nil, fmt.Errorf("failed to get calculation: %w", err)
	}
	return &calculation, nil
}

// GetByCustomerID returns a customer's calculations, newest first
func (r *calculationRepository) GetByCustomerID(ctx context.Context, customerID string) ([]models.FdCalculation, error) {
	var calculations []models.FdCalculation
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&calculations).Error; err != nil {
		return nil, fmt.Errorf("failed to get calculations for customer: %w", err)
	}
	return calculations, nil
}

// GetRecentByCustomerID returns calculations created at or after since, newest first
func (r *calculationRepository) GetRecentByCustomerID(ctx context.Context, customerID string, since time.Time) ([]models.FdCalculation, error) {
	var calculations []models.FdCalculation
	if err := r.db.WithContext(ctx).Where("customer_id = ? AND created_at >= ?", customerID, since.UTC()).
		Order("created_at DESC").Find(&calculations).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent calculations: %w", err)
	}
	return calculations, nil
}

// AttachAccount links a calculation to the account opened from it. A
// calculation already linked keeps its first account.
func (r *calculationRepository) AttachAccount(ctx context.Context, id uuid.UUID, accountNo string) error {
	result := r.db.WithContext(ctx).Model(&models.FdCalculation{}).
		Where("id = ? AND (account_no IS NULL OR account_no = '')", id).
		UpdateColumn("account_no", accountNo)
	if result.Error != nil {
		return fmt.Errorf("failed to link calculation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCalculationNotFound
	}
	return nil
}
