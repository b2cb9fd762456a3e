package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooQuoteProvider fetches closing prices from the Yahoo Finance chart API.
type YahooQuoteProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewYahooQuoteProvider creates a Yahoo-backed quote provider. baseURL may be
// empty to use the public endpoint; the HTTP client carries a bounded timeout
// so a hanging feed cannot stall a caller.
func NewYahooQuoteProvider(baseURL string) *YahooQuoteProvider {
	if baseURL == "" {
		baseURL = defaultYahooBaseURL
	}
	return &YahooQuoteProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// yahooChartResponse mirrors the subset of the chart payload we consume.
type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol   string `json:"symbol"`
				Currency string `json:"currency"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchLatestClose returns the most recent available closing price for the
// symbol, requesting the last five trading days and taking the newest
// non-null close.
func (p *YahooQuoteProvider) FetchLatestClose(ctx context.Context, symbol string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d", p.baseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("yahoo status %d for %s", resp.StatusCode, symbol)
	}

	var payload yahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, err
	}
	if payload.Chart.Error != nil {
		return decimal.Zero, fmt.Errorf("yahoo error for %s: %s", symbol, payload.Chart.Error.Description)
	}
	if len(payload.Chart.Result) == 0 {
		return decimal.Zero, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	result := payload.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return decimal.Zero, fmt.Errorf("no quote data returned for symbol %s", symbol)
	}

	closes := result.Indicators.Quote[0].Close
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] != nil {
			return decimal.NewFromFloat(*closes[i]).Round(2), nil
		}
	}
	return decimal.Zero, fmt.Errorf("no close prices returned for symbol %s", symbol)
}
