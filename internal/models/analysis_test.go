package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetAnalysisJSON_MarketFieldsNullWhenAbsent(t *testing.T) {
	analysis := &AssetAnalysis{
		Ticker:                 "XPTO3",
		TotalQuantity:          decimal.NewFromInt(10),
		AveragePrice:           decimal.RequireFromString("8.00"),
		TotalInvested:          decimal.RequireFromString("80.00"),
		TotalDividendsReceived: decimal.Zero,
	}
	assert.False(t, analysis.HasMarketData())

	raw, err := json.Marshal(analysis)
	require.NoError(t, err)

	body := string(raw)
	// Unknown market data must serialize as explicit nulls, never as zeroes.
	assert.True(t, strings.Contains(body, `"current_market_price":null`), body)
	assert.True(t, strings.Contains(body, `"current_market_value":null`), body)
	assert.True(t, strings.Contains(body, `"financial_return_value":null`), body)
	assert.True(t, strings.Contains(body, `"financial_return_percent":null`), body)
}

func TestAssetAnalysisJSON_DecimalsAsStrings(t *testing.T) {
	price := decimal.RequireFromString("15.00")
	analysis := &AssetAnalysis{
		Ticker:             "PETR4",
		TotalQuantity:      decimal.NewFromInt(150),
		AveragePrice:       decimal.RequireFromString("10.67"),
		CurrentMarketPrice: &price,
	}
	assert.True(t, analysis.HasMarketData())

	raw, err := json.Marshal(analysis)
	require.NoError(t, err)

	// shopspring decimals marshal as quoted strings, keeping exactness on
	// the wire.
	assert.True(t, strings.Contains(string(raw), `"average_price":"10.67"`), string(raw))
}
