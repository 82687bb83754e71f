package collector

import (
	"context"
	"fmt"
	"log"

	"CryptoScope/internal/ingest"
	"CryptoScope/internal/model"
	"CryptoScope/internal/recorder"
	"CryptoScope/internal/session"
)

// MockFetcher returns controllable fixed rows for development and testing.
type MockFetcher struct {
	Rows  map[string][][]any
	Err   error
	Calls []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchOHLC(_ context.Context, pair string, _ int) ([][]any, error) {
	m.Calls = append(m.Calls, pair)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Rows[pair], nil
}

// Collector orchestrates fetching, ingestion, session storage and snapshot recording.
type Collector struct {
	Fetcher  Fetcher
	Store    *session.Store
	Recorder recorder.Recorder
	Interval int
}

// NewCollector creates a new Collector fetching daily bars.
func NewCollector(fetcher Fetcher, store *session.Store, rec recorder.Recorder) *Collector {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Collector{Fetcher: fetcher, Store: store, Recorder: rec, Interval: DailyInterval}
}

// Collect fetches the asset's OHLC history, stores it in the session and
// records a snapshot. A failed snapshot is logged, not returned.
func (c *Collector) Collect(ctx context.Context, asset model.Asset) (*model.PriceSeries, error) {
	if !asset.Valid() {
		return nil, fmt.Errorf("collect: unknown asset %s", asset)
	}

	rows, err := c.Fetcher.FetchOHLC(ctx, asset.Pair(), c.Interval)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", asset, err)
	}

	series, err := ingest.Ingest(asset, rows)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", asset, err)
	}
	c.Store.Put(asset, series)
	log.Printf("[INFO] %s: %d bars from %s", asset, series.Len(), c.Fetcher.Name())

	if err := c.Recorder.RecordSeries(series); err != nil {
		log.Printf("[WARN] record %s snapshot: %v", asset, err)
	}
	return series, nil
}
