package calculator

import (
	"math"
	"time"

	"CryptoScope/internal/model"

	"github.com/shopspring/decimal"
)

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func dayN(n int) time.Time { return day0.AddDate(0, 0, n) }

// seriesOf builds a daily PriceSeries with the given closes.
func seriesOf(asset model.Asset, closes ...float64) *model.PriceSeries {
	records := make([]model.OHLC, len(closes))
	for i, c := range closes {
		d := decimal.NewFromFloat(c)
		records[i] = model.OHLC{Time: dayN(i), Open: d, High: d, Low: d, Close: d, VWAP: d}
	}
	return &model.PriceSeries{Asset: asset, Records: records}
}

// returnsOf builds a ReturnSeries whose point i is stamped dayN(i+1).
func returnsOf(values ...float64) model.ReturnSeries {
	r := make(model.ReturnSeries, len(values))
	for i, v := range values {
		r[i] = model.ReturnPoint{Time: dayN(i + 1), Value: v}
	}
	return r
}

var nan = math.NaN()
