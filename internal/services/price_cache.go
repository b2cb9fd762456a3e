package services

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultPriceTTL is how long a fetched price stays fresh.
const DefaultPriceTTL = 15 * time.Minute

// CachedPrice is one cache entry. Ticker is the originally requested symbol,
// not the candidate that resolved it, so repeat lookups skip fallback
// resolution entirely.
type CachedPrice struct {
	Ticker    string
	Price     decimal.Decimal
	FetchedAt time.Time
}

// PriceCache memoizes quote lookups for a TTL window and resolves ambiguous
// tickers through an ordered list of candidate symbols.
//
// Entries are keyed per ticker and overwritten atomically; unrelated tickers
// never contend on a shared lock. Concurrent refreshes of the same ticker may
// race, in which case the last writer wins. Entries are only superseded,
// never evicted, so the map grows with the set of distinct tickers queried.
type PriceCache struct {
	provider QuoteProvider
	resolver SymbolResolver
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time

	entries sync.Map // ticker -> CachedPrice
}

// NewPriceCache creates a price cache over the given provider and resolver.
// A non-positive ttl falls back to DefaultPriceTTL.
func NewPriceCache(provider QuoteProvider, resolver SymbolResolver, ttl time.Duration, logger *zap.Logger) *PriceCache {
	if ttl <= 0 {
		ttl = DefaultPriceTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PriceCache{
		provider: provider,
		resolver: resolver,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// GetCurrentPrice returns the current price for a ticker, consulting the
// provider only on cache miss or expiry. The boolean result is false when
// every candidate symbol failed; failed lookups are never cached, so the next
// call re-attempts all candidates.
func (c *PriceCache) GetCurrentPrice(ctx context.Context, ticker string) (decimal.Decimal, bool) {
	if ticker == "" {
		return decimal.Zero, false
	}

	if v, ok := c.entries.Load(ticker); ok {
		entry := v.(CachedPrice)
		if c.now().Sub(entry.FetchedAt) < c.ttl {
			return entry.Price, true
		}
	}

	for _, candidate := range c.resolver.Candidates(ticker) {
		price, err := c.provider.FetchLatestClose(ctx, candidate)
		if err != nil {
			c.logger.Debug("quote fetch failed",
				zap.String("ticker", ticker),
				zap.String("candidate", candidate),
				zap.Error(err))
			continue
		}

		c.entries.Store(ticker, CachedPrice{
			Ticker:    ticker,
			Price:     price,
			FetchedAt: c.now(),
		})
		return price, true
	}

	c.logger.Info("no price resolved for ticker", zap.String("ticker", ticker))
	return decimal.Zero, false
}
