package services

import (
	"context"
	"fmt"

	"github.com/carteiralabs/carteira/internal/models"
	"github.com/carteiralabs/carteira/internal/repositories"
)

type assetService struct {
	assets repositories.AssetRepository
}

// NewAssetService creates a new asset service
func NewAssetService(assets repositories.AssetRepository) AssetService {
	return &assetService{assets: assets}
}

func (s *assetService) CreateAsset(ctx context.Context, asset *models.Asset) error {
	if err := asset.Validate(); err != nil {
		return fmt.Errorf("asset validation failed: %w", err)
	}
	return s.assets.Create(ctx, asset)
}

func (s *assetService) GetAssetByTicker(ctx context.Context, ticker string) (*models.Asset, error) {
	return s.assets.GetByTicker(ctx, ticker)
}

func (s *assetService) ListAssets(ctx context.Context, limit, offset int) ([]*models.Asset, error) {
	return s.assets.List(ctx, limit, offset)
}

func (s *assetService) UpdateAsset(ctx context.Context, asset *models.Asset) error {
	if err := asset.Validate(); err != nil {
		return fmt.Errorf("asset validation failed: %w", err)
	}
	return s.assets.Update(ctx, asset)
}

func (s *assetService) DeleteAsset(ctx context.Context, ticker string) error {
	asset, err := s.assets.GetByTicker(ctx, ticker)
	if err != nil {
		return err
	}
	return s.assets.Delete(ctx, asset.ID)
}
