package report

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"CryptoScope/internal/analyzer"
	"CryptoScope/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *analyzer.AssetReport {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	closes := []string{"100", "200", "100", "400", "400", "800"}
	records := make([]model.OHLC, len(closes))
	for i, c := range closes {
		d := decimal.RequireFromString(c)
		records[i] = model.OHLC{
			Time: start.AddDate(0, 0, i), Open: d, High: d, Low: d, Close: d, VWAP: d,
			Volume: decimal.RequireFromString("1500.25"), Count: 1200,
		}
	}
	returns := make(model.ReturnSeries, len(records)-1)
	for i := range returns {
		returns[i] = model.ReturnPoint{Time: records[i+1].Time, Value: 0.1}
	}
	returns[1].Value = math.NaN()

	return &analyzer.AssetReport{
		Asset:         model.Bitcoin,
		Series:        &model.PriceSeries{Asset: model.Bitcoin, Records: records},
		Returns:       returns,
		Summary:       model.NewSummary(4, 0.25, 0.2, 0.05),
		MaxReturnDate: start.AddDate(0, 0, 3),
		Undefined:     1,
		High:          decimal.RequireFromString("800"),
		Low:           decimal.RequireFromString("100"),
		Position:      1,
	}
}

func TestFormatHead(t *testing.T) {
	out := FormatHead(sampleReport().Series, HeadRows)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 1+HeadRows)
	assert.Contains(t, lines[0], "timestamp")
	assert.Contains(t, lines[1], "2024-03-01 00:00:00")
	assert.NotContains(t, out, "2024-03-06")
}

func TestFormatDataQuality(t *testing.T) {
	out := FormatDataQuality(sampleReport())
	assert.Contains(t, out, "Records: 6")
	assert.Contains(t, out, "Range: 2024-03-01 to 2024-03-06")
	assert.Contains(t, out, "Price range: 100 to 800 (last close at 100% of range)")
	assert.Contains(t, out, "Total volume: 9,001.5")
	assert.Contains(t, out, "Total trades: 7,200")
	assert.Contains(t, out, "Undefined returns: 1 of 5")
}

func TestFormatSummary(t *testing.T) {
	rep := sampleReport()
	out := FormatSummary(rep)
	assert.Contains(t, out, "Mean of the logarithmic returns: 0.25000000")
	assert.Contains(t, out, "Median of the logarithmic returns: 0.20000000")
	assert.Contains(t, out, "Standard deviation of the logarithmic returns: 0.05000000")
	assert.Contains(t, out, "Date with the highest return (Bitcoin): 2024-03-04 00:00:00")

	rep.Summary = model.NewSummary(1, 0.3, 0.3, 0)
	assert.Contains(t, FormatSummary(rep), "Standard deviation of the logarithmic returns: n/a")
}

func TestFormatAssetReport(t *testing.T) {
	out := FormatAssetReport(sampleReport())
	assert.Contains(t, out, "Bitcoin Data:")
	assert.Less(t, strings.Index(out, "timestamp"), strings.Index(out, "Data quality:"))
	assert.Less(t, strings.Index(out, "Data quality:"), strings.Index(out, "Analysis:"))
}

func TestFormatCorrelation(t *testing.T) {
	m := &model.CorrelationMatrix{
		Assets: model.AllAssets,
		Values: [][]float64{
			{1, 0.123456789, -0.5},
			{0.123456789, 1, 0.25},
			{-0.5, 0.25, 1},
		},
	}
	out := FormatCorrelation(m)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Ethereum")
	assert.Contains(t, lines[1], "1.00000")
	assert.Contains(t, lines[1], "0.12346")
	assert.Contains(t, lines[3], "-0.50000")
}

func TestFormatMeanReturns(t *testing.T) {
	out := FormatMeanReturns(map[model.Asset]float64{
		model.Ripple:   -0.001,
		model.Bitcoin:  0.002,
		model.Ethereum: 0.0015,
	})
	assert.Less(t, strings.Index(out, "Bitcoin"), strings.Index(out, "Ethereum"))
	assert.Less(t, strings.Index(out, "Ethereum"), strings.Index(out, "Ripple"))
	assert.Contains(t, out, "-0.00100000")
}

func TestFormatDigest(t *testing.T) {
	at := time.Date(2024, 3, 7, 0, 5, 0, 0, time.UTC)
	out := FormatDigest(at, []*analyzer.AssetReport{sampleReport()}, []error{errors.New("fetch Ripple: boom")})
	assert.Contains(t, out, "2024-03-07 00:05")
	assert.Contains(t, out, "<b>Bitcoin</b>: close 800.0000 (6 bars)")
	assert.Contains(t, out, "best day 2024-03-04")
	assert.Contains(t, out, "fetch Ripple: boom")
}
