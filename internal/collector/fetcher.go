package collector

import "context"

// DailyInterval is the OHLC interval in minutes for daily bars.
const DailyInterval = 1440

// Fetcher defines the interface for fetching raw OHLC rows from an exchange.
// Each returned row is (timestamp, open, high, low, close, vwap, volume, count).
type Fetcher interface {
	FetchOHLC(ctx context.Context, pair string, interval int) ([][]any, error)
	Name() string
}
