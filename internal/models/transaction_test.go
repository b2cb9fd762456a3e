package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTransactionValidate(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction *Transaction
		expectError bool
	}{
		{
			name: "Valid buy",
			transaction: &Transaction{
				AssetID:         "asset_petr4",
				Quantity:        decimal.NewFromInt(100),
				Price:           decimal.RequireFromString("10.50"),
				TransactionDate: date,
			},
			expectError: false,
		},
		{
			name: "Valid sell with negative quantity",
			transaction: &Transaction{
				AssetID:         "asset_petr4",
				Quantity:        decimal.NewFromInt(-40),
				Price:           decimal.RequireFromString("12.00"),
				TransactionDate: date,
			},
			expectError: false,
		},
		{
			name: "Valid zero-price transaction (stock grant)",
			transaction: &Transaction{
				AssetID:         "asset_petr4",
				Quantity:        decimal.NewFromInt(10),
				Price:           decimal.Zero,
				TransactionDate: date,
			},
			expectError: false,
		},
		{
			name: "Missing asset_id",
			transaction: &Transaction{
				Quantity:        decimal.NewFromInt(100),
				Price:           decimal.RequireFromString("10.50"),
				TransactionDate: date,
			},
			expectError: true,
		},
		{
			name: "Zero quantity",
			transaction: &Transaction{
				AssetID:         "asset_petr4",
				Quantity:        decimal.Zero,
				Price:           decimal.RequireFromString("10.50"),
				TransactionDate: date,
			},
			expectError: true,
		},
		{
			name: "Negative price",
			transaction: &Transaction{
				AssetID:         "asset_petr4",
				Quantity:        decimal.NewFromInt(100),
				Price:           decimal.RequireFromString("-1"),
				TransactionDate: date,
			},
			expectError: true,
		},
		{
			name: "Missing date",
			transaction: &Transaction{
				AssetID:  "asset_petr4",
				Quantity: decimal.NewFromInt(100),
				Price:    decimal.RequireFromString("10.50"),
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestTransactionIsBuy(t *testing.T) {
	buy := &Transaction{Quantity: decimal.NewFromInt(10)}
	if !buy.IsBuy() {
		t.Error("positive quantity should be a buy")
	}
	sell := &Transaction{Quantity: decimal.NewFromInt(-10)}
	if sell.IsBuy() {
		t.Error("negative quantity should not be a buy")
	}
}
