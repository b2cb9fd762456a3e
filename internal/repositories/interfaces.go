package repositories

import (
	"context"

	"github.com/carteiralabs/carteira/internal/models"
)

// AssetRepository defines the interface for asset data operations
type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, id string) (*models.Asset, error)
	GetByTicker(ctx context.Context, ticker string) (*models.Asset, error)
	List(ctx context.Context, limit, offset int) ([]*models.Asset, error)
	Update(ctx context.Context, asset *models.Asset) error
	Delete(ctx context.Context, id string) error
}

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	ListByAsset(ctx context.Context, assetID string, limit, offset int) ([]*models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, id string) error
}

// DividendRepository defines the interface for dividend data operations
type DividendRepository interface {
	Create(ctx context.Context, dividend *models.Dividend) error
	GetByID(ctx context.Context, id string) (*models.Dividend, error)
	ListByAsset(ctx context.Context, assetID string, limit, offset int) ([]*models.Dividend, error)
	Update(ctx context.Context, dividend *models.Dividend) error
	Delete(ctx context.Context, id string) error
}

// AgentActionRepository defines the interface for the agent action audit log
type AgentActionRepository interface {
	Create(ctx context.Context, action *models.AgentAction) error
	List(ctx context.Context, agentName string, limit, offset int) ([]*models.AgentAction, error)
}
