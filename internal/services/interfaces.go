package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carteiralabs/carteira/internal/models"
)

// QuoteProvider abstracts the external market-data feed. FetchLatestClose
// returns the most recent available closing price for one concrete symbol.
// Unknown symbols, empty historical series and transport failures are all
// reported as a plain error; callers must not distinguish between them.
type QuoteProvider interface {
	FetchLatestClose(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// SymbolResolver produces the ordered candidate symbols to try for a
// requested ticker. New regional market conventions are added by swapping
// the resolver, not by touching cache logic.
type SymbolResolver interface {
	Candidates(ticker string) []string
}

// PriceService resolves a current price for a ticker. The boolean result is
// false when no candidate symbol yielded a price; that is not an error.
type PriceService interface {
	GetCurrentPrice(ctx context.Context, ticker string) (decimal.Decimal, bool)
}

// AssetService defines the interface for asset CRUD operations
type AssetService interface {
	CreateAsset(ctx context.Context, asset *models.Asset) error
	GetAssetByTicker(ctx context.Context, ticker string) (*models.Asset, error)
	ListAssets(ctx context.Context, limit, offset int) ([]*models.Asset, error)
	UpdateAsset(ctx context.Context, asset *models.Asset) error
	DeleteAsset(ctx context.Context, ticker string) error
}

// TransactionService defines the interface for transaction operations
type TransactionService interface {
	CreateTransaction(ctx context.Context, ticker string, tx *models.Transaction) (*models.Transaction, error)
	ListTransactions(ctx context.Context, ticker string, limit, offset int) ([]*models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
}

// DividendService defines the interface for dividend operations
type DividendService interface {
	CreateDividend(ctx context.Context, ticker string, dividend *models.Dividend) (*models.Dividend, error)
	ListDividends(ctx context.Context, ticker string, limit, offset int) ([]*models.Dividend, error)
	UpdateDividend(ctx context.Context, dividend *models.Dividend) error
	DeleteDividend(ctx context.Context, id string) error
}

// AnalysisService projects an asset's full transaction and dividend history
// into a single-point-in-time valuation snapshot.
type AnalysisService interface {
	AnalyzeAsset(ctx context.Context, ticker string) (*models.AssetAnalysis, error)
	AnalyzePortfolio(ctx context.Context) ([]*models.AssetAnalysis, error)
}

// AgentService executes structured tool calls submitted by the external
// natural-language orchestrator and records them in the audit log.
type AgentService interface {
	Perform(ctx context.Context, req *models.AgentRequest) (*models.AgentResponse, error)
	ListActions(ctx context.Context, agentName string, limit, offset int) ([]*models.AgentAction, error)
}
