package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single buy or sell of an asset. Quantity is
// signed: positive quantities are buys, negative quantities are sells.
type Transaction struct {
	ID              string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	AssetID         string          `json:"asset_id" gorm:"column:asset_id;type:varchar(255);not null;index"`
	Quantity        decimal.Decimal `json:"quantity" gorm:"column:quantity;type:decimal(30,10);not null"`
	Price           decimal.Decimal `json:"price" gorm:"column:price;type:decimal(30,10);not null"`
	TransactionDate time.Time       `json:"transaction_date" gorm:"column:transaction_date;type:date;not null;index"`
	CreatedAt       time.Time       `json:"created_at" gorm:"column:created_at;type:timestamptz;autoCreateTime"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"column:updated_at;type:timestamptz;autoUpdateTime"`
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// Validate validates the transaction data
func (t *Transaction) Validate() error {
	if t.AssetID == "" {
		return errors.New("asset_id is required")
	}
	if t.Quantity.IsZero() {
		return errors.New("quantity must be non-zero")
	}
	if t.Price.IsNegative() {
		return errors.New("price must be non-negative")
	}
	if t.TransactionDate.IsZero() {
		return errors.New("transaction_date is required")
	}
	return nil
}

// IsBuy reports whether the transaction adds shares to the position.
func (t *Transaction) IsBuy() bool {
	return t.Quantity.IsPositive()
}
