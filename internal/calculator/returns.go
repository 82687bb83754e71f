package calculator

import (
	"math"

	"CryptoScope/internal/model"
)

// LogReturns computes ln(close[i]/close[i-1]) for every consecutive pair of bars.
// A non-positive close on either side yields NaN at that position, so the
// result stays aligned with series.Records[1:].
func LogReturns(series *model.PriceSeries) model.ReturnSeries {
	n := series.Len()
	if n < 2 {
		return model.ReturnSeries{}
	}

	closes := series.Closes()
	returns := make(model.ReturnSeries, n-1)
	for i := 1; i < n; i++ {
		prev, cur := closes[i-1], closes[i]
		v := math.NaN()
		if prev > 0 && cur > 0 {
			v = math.Log(cur / prev)
		}
		returns[i-1] = model.ReturnPoint{Time: series.Records[i].Time, Value: v}
	}
	return returns
}

// UndefinedCount returns the number of NaN sentinels in returns.
func UndefinedCount(returns model.ReturnSeries) int {
	n := 0
	for _, p := range returns {
		if !p.Defined() {
			n++
		}
	}
	return n
}
