package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	apperrors "github.com/carteiralabs/carteira/internal/errors"
	"github.com/carteiralabs/carteira/internal/models"
)

// ---- Mocks for providers, repositories and services used in unit tests ----

// mockQuoteProvider answers from a fixed symbol->price table and counts how
// often each symbol was requested.
type mockQuoteProvider struct {
	mu     sync.Mutex
	prices map[string]decimal.Decimal
	calls  map[string]int
}

func newMockQuoteProvider(prices map[string]decimal.Decimal) *mockQuoteProvider {
	return &mockQuoteProvider{
		prices: prices,
		calls:  make(map[string]int),
	}
}

func (m *mockQuoteProvider) FetchLatestClose(ctx context.Context, symbol string) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[symbol]++
	if price, ok := m.prices[symbol]; ok {
		return price, nil
	}
	return decimal.Zero, fmt.Errorf("no quote for %s", symbol)
}

func (m *mockQuoteProvider) callCount(symbol string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[symbol]
}

func (m *mockQuoteProvider) totalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

type mockPriceService struct {
	prices map[string]decimal.Decimal
}

func (m *mockPriceService) GetCurrentPrice(ctx context.Context, ticker string) (decimal.Decimal, bool) {
	price, ok := m.prices[ticker]
	return price, ok
}

type mockAssetRepo struct {
	byTicker map[string]*models.Asset
	created  []*models.Asset
	nextID   int
}

func newMockAssetRepo(assets ...*models.Asset) *mockAssetRepo {
	repo := &mockAssetRepo{byTicker: make(map[string]*models.Asset)}
	for _, a := range assets {
		repo.byTicker[a.Ticker] = a
	}
	return repo
}

func (m *mockAssetRepo) Create(ctx context.Context, asset *models.Asset) error {
	if _, ok := m.byTicker[asset.Ticker]; ok {
		return &apperrors.ErrDuplicate{Entity: "asset", Key: asset.Ticker}
	}
	if asset.ID == "" {
		m.nextID++
		asset.ID = fmt.Sprintf("asset_%d", m.nextID)
	}
	m.byTicker[asset.Ticker] = asset
	m.created = append(m.created, asset)
	return nil
}

func (m *mockAssetRepo) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	for _, a := range m.byTicker {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, &apperrors.ErrNotFound{Entity: "asset", Key: id}
}

func (m *mockAssetRepo) GetByTicker(ctx context.Context, ticker string) (*models.Asset, error) {
	if a, ok := m.byTicker[ticker]; ok {
		return a, nil
	}
	return nil, &apperrors.ErrNotFound{Entity: "asset", Key: ticker}
}

func (m *mockAssetRepo) List(ctx context.Context, limit, offset int) ([]*models.Asset, error) {
	assets := make([]*models.Asset, 0, len(m.byTicker))
	for _, a := range m.byTicker {
		assets = append(assets, a)
	}
	// Deterministic ticker order, same as the real repository
	for i := 0; i < len(assets); i++ {
		for j := i + 1; j < len(assets); j++ {
			if assets[j].Ticker < assets[i].Ticker {
				assets[i], assets[j] = assets[j], assets[i]
			}
		}
	}
	return assets, nil
}

func (m *mockAssetRepo) Update(ctx context.Context, asset *models.Asset) error { return nil }
func (m *mockAssetRepo) Delete(ctx context.Context, id string) error           { return nil }

type mockTransactionRepo struct {
	byAsset map[string][]*models.Transaction
	created []*models.Transaction
}

func newMockTransactionRepo() *mockTransactionRepo {
	return &mockTransactionRepo{byAsset: make(map[string][]*models.Transaction)}
}

func (m *mockTransactionRepo) add(assetID string, quantity, price string) {
	m.byAsset[assetID] = append(m.byAsset[assetID], &models.Transaction{
		AssetID:  assetID,
		Quantity: decimal.RequireFromString(quantity),
		Price:    decimal.RequireFromString(price),
	})
}

func (m *mockTransactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	m.byAsset[tx.AssetID] = append(m.byAsset[tx.AssetID], tx)
	m.created = append(m.created, tx)
	return nil
}

func (m *mockTransactionRepo) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	return nil, &apperrors.ErrNotFound{Entity: "transaction", Key: id}
}

func (m *mockTransactionRepo) ListByAsset(ctx context.Context, assetID string, limit, offset int) ([]*models.Transaction, error) {
	return m.byAsset[assetID], nil
}

func (m *mockTransactionRepo) Update(ctx context.Context, tx *models.Transaction) error { return nil }
func (m *mockTransactionRepo) Delete(ctx context.Context, id string) error              { return nil }

type mockDividendRepo struct {
	byAsset map[string][]*models.Dividend
}

func newMockDividendRepo() *mockDividendRepo {
	return &mockDividendRepo{byAsset: make(map[string][]*models.Dividend)}
}

func (m *mockDividendRepo) add(assetID string, amountPerShare string) {
	m.byAsset[assetID] = append(m.byAsset[assetID], &models.Dividend{
		AssetID:        assetID,
		AmountPerShare: decimal.RequireFromString(amountPerShare),
	})
}

func (m *mockDividendRepo) Create(ctx context.Context, dividend *models.Dividend) error {
	m.byAsset[dividend.AssetID] = append(m.byAsset[dividend.AssetID], dividend)
	return nil
}

func (m *mockDividendRepo) GetByID(ctx context.Context, id string) (*models.Dividend, error) {
	return nil, &apperrors.ErrNotFound{Entity: "dividend", Key: id}
}

func (m *mockDividendRepo) ListByAsset(ctx context.Context, assetID string, limit, offset int) ([]*models.Dividend, error) {
	return m.byAsset[assetID], nil
}

func (m *mockDividendRepo) Update(ctx context.Context, dividend *models.Dividend) error { return nil }
func (m *mockDividendRepo) Delete(ctx context.Context, id string) error                 { return nil }

type mockAgentActionRepo struct {
	records   []*models.AgentAction
	createErr error
}

func (m *mockAgentActionRepo) Create(ctx context.Context, action *models.AgentAction) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.records = append(m.records, action)
	return nil
}

func (m *mockAgentActionRepo) List(ctx context.Context, agentName string, limit, offset int) ([]*models.AgentAction, error) {
	if agentName == "" {
		return m.records, nil
	}
	var filtered []*models.AgentAction
	for _, r := range m.records {
		if r.AgentName == agentName {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}
