package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Dividend represents a per-share dividend payment for an asset
type Dividend struct {
	ID             string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	AssetID        string          `json:"asset_id" gorm:"column:asset_id;type:varchar(255);not null;index"`
	AmountPerShare decimal.Decimal `json:"amount_per_share" gorm:"column:amount_per_share;type:decimal(30,10);not null"`
	PaymentDate    time.Time       `json:"payment_date" gorm:"column:payment_date;type:date;not null;index"`
	CreatedAt      time.Time       `json:"created_at" gorm:"column:created_at;type:timestamptz;autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"column:updated_at;type:timestamptz;autoUpdateTime"`
}

// TableName returns the table name for the Dividend model
func (Dividend) TableName() string {
	return "dividends"
}

// Validate validates the dividend data
func (d *Dividend) Validate() error {
	if d.AssetID == "" {
		return errors.New("asset_id is required")
	}
	if d.AmountPerShare.IsZero() || d.AmountPerShare.IsNegative() {
		return errors.New("amount_per_share must be positive")
	}
	if d.PaymentDate.IsZero() {
		return errors.New("payment_date is required")
	}
	return nil
}
