package services

import (
	"context"
	"fmt"

	"github.com/carteiralabs/carteira/internal/models"
	"github.com/carteiralabs/carteira/internal/repositories"
)

type transactionService struct {
	assets       repositories.AssetRepository
	transactions repositories.TransactionRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(assets repositories.AssetRepository, transactions repositories.TransactionRepository) TransactionService {
	return &transactionService{assets: assets, transactions: transactions}
}

// CreateTransaction records a buy or sell against the asset identified by
// ticker. The transaction's asset reference is taken from the resolved asset,
// never from the request body.
func (s *transactionService) CreateTransaction(ctx context.Context, ticker string, tx *models.Transaction) (*models.Transaction, error) {
	asset, err := s.assets.GetByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	tx.AssetID = asset.ID

	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("transaction validation failed: %w", err)
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, ticker string, limit, offset int) ([]*models.Transaction, error) {
	asset, err := s.assets.GetByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return s.transactions.ListByAsset(ctx, asset.ID, limit, offset)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	existing, err := s.transactions.GetByID(ctx, tx.ID)
	if err != nil {
		return err
	}
	tx.AssetID = existing.AssetID

	if err := tx.Validate(); err != nil {
		return fmt.Errorf("transaction validation failed: %w", err)
	}
	return s.transactions.Update(ctx, tx)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	return s.transactions.Delete(ctx, id)
}
