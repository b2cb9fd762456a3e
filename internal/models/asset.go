package models

import (
	"errors"
	"time"
)

// Asset types supported by the portfolio
const (
	AssetTypeStock = "STOCK"
	AssetTypeREIT  = "REIT"
)

// Asset represents a tradeable asset tracked by the portfolio
type Asset struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	Ticker    string    `json:"ticker" gorm:"column:ticker;type:varchar(50);not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"column:name;type:varchar(255);not null"`
	AssetType string    `json:"asset_type" gorm:"column:asset_type;type:varchar(20);not null"`
	Sector    *string   `json:"sector" gorm:"column:sector;type:varchar(100)"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;autoUpdateTime"`
}

// TableName returns the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}

// Validate validates the asset data
func (a *Asset) Validate() error {
	if a.Ticker == "" {
		return errors.New("ticker is required")
	}
	if a.Name == "" {
		return errors.New("name is required")
	}
	if a.AssetType != AssetTypeStock && a.AssetType != AssetTypeREIT {
		return errors.New("asset_type must be 'STOCK' or 'REIT'")
	}
	return nil
}
