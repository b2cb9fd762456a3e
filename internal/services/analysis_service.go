package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/carteiralabs/carteira/internal/models"
	"github.com/carteiralabs/carteira/internal/repositories"
)

var oneHundred = decimal.NewFromInt(100)

type analysisService struct {
	assets       repositories.AssetRepository
	transactions repositories.TransactionRepository
	dividends    repositories.DividendRepository
	prices       PriceService
	logger       *zap.Logger
}

// NewAnalysisService creates the valuation service over the storage
// repositories and a price source.
func NewAnalysisService(
	assets repositories.AssetRepository,
	transactions repositories.TransactionRepository,
	dividends repositories.DividendRepository,
	prices PriceService,
	logger *zap.Logger,
) AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &analysisService{
		assets:       assets,
		transactions: transactions,
		dividends:    dividends,
		prices:       prices,
		logger:       logger,
	}
}

// AnalyzeAsset computes the valuation snapshot for one asset. A ticker with
// no resolvable market price still yields a complete analysis with populated
// quantity and cost fields and nil market fields.
func (s *analysisService) AnalyzeAsset(ctx context.Context, ticker string) (*models.AssetAnalysis, error) {
	asset, err := s.assets.GetByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return s.analyze(ctx, asset)
}

// AnalyzePortfolio computes the valuation snapshot for every asset.
func (s *analysisService) AnalyzePortfolio(ctx context.Context) ([]*models.AssetAnalysis, error) {
	assets, err := s.assets.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	analyses := make([]*models.AssetAnalysis, 0, len(assets))
	for _, asset := range assets {
		analysis, err := s.analyze(ctx, asset)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze %s: %w", asset.Ticker, err)
		}
		analyses = append(analyses, analysis)
	}
	return analyses, nil
}

func (s *analysisService) analyze(ctx context.Context, asset *models.Asset) (*models.AssetAnalysis, error) {
	transactions, err := s.transactions.ListByAsset(ctx, asset.ID, 0, 0)
	if err != nil {
		return nil, err
	}
	dividends, err := s.dividends.ListByAsset(ctx, asset.ID, 0, 0)
	if err != nil {
		return nil, err
	}

	var currentPrice *decimal.Decimal
	if price, ok := s.prices.GetCurrentPrice(ctx, asset.Ticker); ok {
		currentPrice = &price
	} else {
		s.logger.Debug("market price unavailable", zap.String("ticker", asset.Ticker))
	}

	return buildAnalysis(asset.Ticker, transactions, dividends, currentPrice), nil
}

// buildAnalysis folds a full transaction and dividend history plus an
// optional current price into an AssetAnalysis. It is a pure transform:
// no caching, no persistence, safe to run concurrently.
//
// All monetary results are quantized to 2 decimal places with half-up
// rounding. Quantity is an exact sum of the signed transaction quantities and
// is not quantized.
func buildAnalysis(ticker string, transactions []*models.Transaction, dividends []*models.Dividend, currentPrice *decimal.Decimal) *models.AssetAnalysis {
	totalQuantity := decimal.Zero
	for _, t := range transactions {
		totalQuantity = totalQuantity.Add(t.Quantity)
	}

	// A fully or over-sold position has no cost basis under this model.
	averagePrice := decimal.Zero
	totalInvested := decimal.Zero
	if totalQuantity.IsPositive() {
		totalCost := decimal.Zero
		totalSharesBought := decimal.Zero
		for _, t := range transactions {
			if t.IsBuy() {
				totalCost = totalCost.Add(t.Quantity.Mul(t.Price))
				totalSharesBought = totalSharesBought.Add(t.Quantity)
			}
		}
		if totalSharesBought.IsPositive() {
			averagePrice = totalCost.Div(totalSharesBought).Round(2)
		}
		totalInvested = totalQuantity.Mul(averagePrice).Round(2)
	}

	// Every historical dividend is valued at the current quantity, not the
	// quantity held at its payment date. Observed behavior, kept as is.
	totalDividends := decimal.Zero
	for _, d := range dividends {
		totalDividends = totalDividends.Add(d.AmountPerShare.Mul(totalQuantity))
	}
	totalDividends = totalDividends.Round(2)

	analysis := &models.AssetAnalysis{
		Ticker:                 ticker,
		TotalQuantity:          totalQuantity,
		AveragePrice:           averagePrice,
		TotalInvested:          totalInvested,
		TotalDividendsReceived: totalDividends,
	}

	if currentPrice == nil {
		return analysis
	}

	marketValue := totalQuantity.Mul(*currentPrice).Round(2)
	analysis.CurrentMarketPrice = currentPrice
	analysis.CurrentMarketValue = &marketValue

	// Return fields stay absent for a zero invested total even when a price
	// is known: a percentage over zero capital is meaningless.
	if totalInvested.IsPositive() {
		returnValue := marketValue.Sub(totalInvested)
		returnPercent := returnValue.Div(totalInvested).Mul(oneHundred).Round(2)
		analysis.FinancialReturnValue = &returnValue
		analysis.FinancialReturnPercent = &returnPercent
	}

	return analysis
}
