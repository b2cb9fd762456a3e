package models

import (
	"github.com/shopspring/decimal"
)

// AssetAnalysis is the point-in-time valuation snapshot for a single asset.
// Quantity and cost-basis fields are always populated; market-dependent
// fields are nil when no current price could be resolved. Nil means
// "unknown", never zero.
type AssetAnalysis struct {
	Ticker                 string           `json:"ticker"`
	TotalQuantity          decimal.Decimal  `json:"total_quantity"`
	AveragePrice           decimal.Decimal  `json:"average_price"`
	TotalInvested          decimal.Decimal  `json:"total_invested"`
	CurrentMarketPrice     *decimal.Decimal `json:"current_market_price"`
	CurrentMarketValue     *decimal.Decimal `json:"current_market_value"`
	FinancialReturnValue   *decimal.Decimal `json:"financial_return_value"`
	FinancialReturnPercent *decimal.Decimal `json:"financial_return_percent"`
	TotalDividendsReceived decimal.Decimal  `json:"total_dividends_received"`
}

// HasMarketData reports whether a current price was resolved for the asset.
func (a *AssetAnalysis) HasMarketData() bool {
	return a.CurrentMarketPrice != nil
}
