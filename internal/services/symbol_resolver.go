package services

import "strings"

// SuffixResolver generates candidate symbols for a default regional market.
// The literal ticker is always tried first; if the ticker carries no market
// suffix, the ticker suffixed for the default market is tried next. Brazilian
// B3 symbols on the quote feed carry the ".SA" suffix (e.g. PETR4.SA).
type SuffixResolver struct {
	suffix string
}

// DefaultMarketSuffix is the quote-feed suffix for the B3 exchange.
const DefaultMarketSuffix = ".SA"

// NewSuffixResolver creates a resolver for the given market suffix. An empty
// suffix falls back to the B3 default.
func NewSuffixResolver(suffix string) *SuffixResolver {
	if suffix == "" {
		suffix = DefaultMarketSuffix
	}
	if !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	return &SuffixResolver{suffix: suffix}
}

// Candidates returns the ordered symbols to attempt for a ticker.
func (r *SuffixResolver) Candidates(ticker string) []string {
	candidates := []string{ticker}
	if !strings.Contains(ticker, ".") {
		candidates = append(candidates, ticker+r.suffix)
	}
	return candidates
}
