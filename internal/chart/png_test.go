package chart

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"CryptoScope/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries() *model.PriceSeries {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := make([]model.OHLC, 30)
	for i := range records {
		c := decimal.NewFromFloat(100 + 10*math.Sin(float64(i)/3))
		records[i] = model.OHLC{Time: start.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c, VWAP: c}
	}
	return &model.PriceSeries{Asset: model.Ethereum, Records: records}
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Equal(t, ".png", filepath.Ext(path))
}

func TestPNGRenderer(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	r, err := NewPNGRenderer(dir)
	require.NoError(t, err)

	series := testSeries()
	path, err := r.PriceHistory(series)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "XETHZUSD_prices.png"), path)
	assertPNG(t, path)

	returns := make(model.ReturnSeries, 0, series.Len()-1)
	for i := 1; i < series.Len(); i++ {
		returns = append(returns, model.ReturnPoint{Time: series.Records[i].Time, Value: float64(i%5) / 100})
	}
	returns[3].Value = math.NaN()
	path, err = r.LogReturns(model.Ethereum, returns)
	require.NoError(t, err)
	assertPNG(t, path)

	path, err = r.CorrelationHeatmap(&model.CorrelationMatrix{
		Assets: model.AllAssets,
		Values: [][]float64{{1, 0.8, 0.6}, {0.8, 1, 0.7}, {0.6, 0.7, 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "correlation.png"), path)
	assertPNG(t, path)

	path, err = r.MeanReturns(map[model.Asset]float64{
		model.Bitcoin:  0.0021,
		model.Ethereum: 0.0012,
		model.Ripple:   -0.0004,
	})
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestPNGRenderer_NoData(t *testing.T) {
	r, err := NewPNGRenderer(t.TempDir())
	require.NoError(t, err)

	_, err = r.PriceHistory(&model.PriceSeries{Asset: model.Bitcoin})
	assert.ErrorIs(t, err, model.ErrInsufficientData)

	_, err = r.LogReturns(model.Bitcoin, model.ReturnSeries{{Time: time.Now(), Value: math.NaN()}})
	assert.ErrorIs(t, err, model.ErrInsufficientData)

	_, err = r.MeanReturns(nil)
	assert.ErrorIs(t, err, model.ErrInsufficientData)
}

func TestNoopRenderer(t *testing.T) {
	var r Renderer = NewNoopRenderer()
	path, err := r.PriceHistory(nil)
	assert.NoError(t, err)
	assert.Empty(t, path)
}
