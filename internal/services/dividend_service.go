package services

import (
	"context"
	"fmt"

	"github.com/carteiralabs/carteira/internal/models"
	"github.com/carteiralabs/carteira/internal/repositories"
)

type dividendService struct {
	assets    repositories.AssetRepository
	dividends repositories.DividendRepository
}

// NewDividendService creates a new dividend service
func NewDividendService(assets repositories.AssetRepository, dividends repositories.DividendRepository) DividendService {
	return &dividendService{assets: assets, dividends: dividends}
}

func (s *dividendService) CreateDividend(ctx context.Context, ticker string, dividend *models.Dividend) (*models.Dividend, error) {
	asset, err := s.assets.GetByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	dividend.AssetID = asset.ID

	if err := dividend.Validate(); err != nil {
		return nil, fmt.Errorf("dividend validation failed: %w", err)
	}
	if err := s.dividends.Create(ctx, dividend); err != nil {
		return nil, err
	}
	return dividend, nil
}

func (s *dividendService) ListDividends(ctx context.Context, ticker string, limit, offset int) ([]*models.Dividend, error) {
	asset, err := s.assets.GetByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return s.dividends.ListByAsset(ctx, asset.ID, limit, offset)
}

func (s *dividendService) UpdateDividend(ctx context.Context, dividend *models.Dividend) error {
	existing, err := s.dividends.GetByID(ctx, dividend.ID)
	if err != nil {
		return err
	}
	dividend.AssetID = existing.AssetID

	if err := dividend.Validate(); err != nil {
		return fmt.Errorf("dividend validation failed: %w", err)
	}
	return s.dividends.Update(ctx, dividend)
}

func (s *dividendService) DeleteDividend(ctx context.Context, id string) error {
	return s.dividends.Delete(ctx, id)
}
