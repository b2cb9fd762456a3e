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

type assetRepository struct {
	db *db.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(database *db.DB) AssetRepository {
	return &assetRepository{db: database}
}

func (r *assetRepository) Create(ctx context.Context, asset *models.Asset) error {
	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Asset{}).
		Where("ticker = ?", asset.Ticker).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check ticker uniqueness: %w", err)
	}
	if count > 0 {
		return &apperrors.ErrDuplicate{Entity: "asset", Key: asset.Ticker}
	}

	if err := r.db.WithContext(ctx).Create(asset).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (r *assetRepository) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	var asset models.Asset
	if err := r.db.WithContext(ctx).First(&asset, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &apperrors.ErrNotFound{Entity: "asset", Key: id}
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &asset, nil
}

func (r *assetRepository) GetByTicker(ctx context.Context, ticker string) (*models.Asset, error) {
	var asset models.Asset
	if err := r.db.WithContext(ctx).First(&asset, "ticker = ?", ticker).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &apperrors.ErrNotFound{Entity: "asset", Key: ticker}
		}
		return nil, fmt.Errorf("failed to get asset by ticker: %w", err)
	}
	return &asset, nil
}

func (r *assetRepository) List(ctx context.Context, limit, offset int) ([]*models.Asset, error) {
	query := r.db.WithContext(ctx).Order("ticker ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var assets []*models.Asset
	if err := query.Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

func (r *assetRepository) Update(ctx context.Context, asset *models.Asset) error {
	result := r.db.WithContext(ctx).Model(&models.Asset{}).
		Where("id = ?", asset.ID).
		Updates(asset)
	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "asset", Key: asset.ID}
	}
	return nil
}

func (r *assetRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Asset{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "asset", Key: id}
	}
	return nil
}
