package analyzer

import (
	"context"
	"fmt"
	"time"

	"CryptoScope/internal/calculator"
	"CryptoScope/internal/collector"
	"CryptoScope/internal/model"
	"CryptoScope/internal/session"

	"github.com/shopspring/decimal"
)

// AssetReport is the per-asset analysis shown after a fetch.
type AssetReport struct {
	Asset         model.Asset
	Series        *model.PriceSeries
	Returns       model.ReturnSeries
	Summary       model.Summary
	MaxReturnDate time.Time
	Undefined     int

	// High and Low span the whole series; Position is where the last close sits between them.
	High, Low decimal.Decimal
	Position  float64
}

// Analyzer derives reports from the session store. Nothing it computes is cached.
type Analyzer struct {
	Collector *collector.Collector
	Store     *session.Store
}

// New creates an Analyzer reading from the collector's store.
func New(c *collector.Collector) *Analyzer {
	return &Analyzer{Collector: c, Store: c.Store}
}

// FetchAndReport fetches a fresh series for asset and reports on it.
func (a *Analyzer) FetchAndReport(ctx context.Context, asset model.Asset) (*AssetReport, error) {
	if _, err := a.Collector.Collect(ctx, asset); err != nil {
		return nil, err
	}
	return a.Report(asset)
}

// Report analyzes the series currently held for asset.
func (a *Analyzer) Report(asset model.Asset) (*AssetReport, error) {
	series, err := a.Store.Get(asset)
	if err != nil {
		return nil, err
	}

	returns := calculator.LogReturns(series)
	summary, err := calculator.Describe(returns)
	if err != nil {
		return nil, fmt.Errorf("%s summary: %w", asset, err)
	}
	maxDate, err := calculator.MaxReturnDate(series, returns)
	if err != nil {
		return nil, fmt.Errorf("%s max return date: %w", asset, err)
	}

	high, low, err := calculator.PriceRange(series)
	if err != nil {
		return nil, fmt.Errorf("%s price range: %w", asset, err)
	}
	last := series.Records[series.Len()-1].Close
	pos, err := calculator.RangePosition(last, high, low)
	if err != nil {
		return nil, fmt.Errorf("%s range position: %w", asset, err)
	}

	return &AssetReport{
		Asset:         asset,
		Series:        series,
		Returns:       returns,
		Summary:       summary,
		MaxReturnDate: maxDate,
		Undefined:     calculator.UndefinedCount(returns),
		High:          high,
		Low:           low,
		Position:      pos,
	}, nil
}

// Correlation builds the correlation matrix over all assets.
func (a *Analyzer) Correlation() (*model.CorrelationMatrix, error) {
	returns, err := a.allReturns()
	if err != nil {
		return nil, err
	}
	return calculator.CorrelationMatrix(returns)
}

// MeanReturns computes the mean log return of every asset.
func (a *Analyzer) MeanReturns() (map[model.Asset]float64, error) {
	returns, err := a.allReturns()
	if err != nil {
		return nil, err
	}
	return calculator.MeanReturns(returns)
}

func (a *Analyzer) allReturns() (map[model.Asset]model.ReturnSeries, error) {
	all, err := a.Store.Require(model.AllAssets...)
	if err != nil {
		return nil, err
	}
	out := make(map[model.Asset]model.ReturnSeries, len(all))
	for asset, series := range all {
		out[asset] = calculator.LogReturns(series)
	}
	return out, nil
}
