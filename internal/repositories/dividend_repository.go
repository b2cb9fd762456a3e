package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carteiralabs/carteira/internal/db"
	apperrors "github.com/carteiralabs/carteira/internal/errors"
	"github.com/carteiralabs/carteira/internal/models"
)

type dividendRepository struct {
	db *db.DB
}

// NewDividendRepository creates a new dividend repository
func NewDividendRepository(database *db.DB) DividendRepository {
	return &dividendRepository{db: database}
}

func (r *dividendRepository) Create(ctx context.Context, dividend *models.Dividend) error {
	if dividend.ID == "" {
		dividend.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dividend).Error; err != nil {
		return fmt.Errorf("failed to create dividend: %w", err)
	}
	return nil
}

func (r *dividendRepository) GetByID(ctx context.Context, id string) (*models.Dividend, error) {
	var dividend models.Dividend
	if err := r.db.WithContext(ctx).First(&dividend, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &apperrors.ErrNotFound{Entity: "dividend", Key: id}
		}
		return nil, fmt.Errorf("failed to get dividend: %w", err)
	}
	return &dividend, nil
}

func (r *dividendRepository) ListByAsset(ctx context.Context, assetID string, limit, offset int) ([]*models.Dividend, error) {
	query := r.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("payment_date ASC, created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var dividends []*models.Dividend
	if err := query.Find(&dividends).Error; err != nil {
		return nil, fmt.Errorf("failed to list dividends: %w", err)
	}
	return dividends, nil
}

func (r *dividendRepository) Update(ctx context.Context, dividend *models.Dividend) error {
	result := r.db.WithContext(ctx).Model(&models.Dividend{}).
		Where("id = ?", dividend.ID).
		Updates(dividend)
	if result.Error != nil {
		return fmt.Errorf("failed to update dividend: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "dividend", Key: dividend.ID}
	}
	return nil
}

func (r *dividendRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Dividend{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete dividend: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "dividend", Key: id}
	}
	return nil
}
