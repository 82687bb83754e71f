package calculator

import (
	"fmt"
	"math"
	"sort"
	"time"

	"CryptoScope/internal/model"

	"gonum.org/v1/gonum/stat"
)

// Describe computes mean, median and sample standard deviation over the
// defined values of returns.
func Describe(returns model.ReturnSeries) (model.Summary, error) {
	values := returns.DefinedValues()
	if len(values) == 0 {
		return model.Summary{}, fmt.Errorf("describe %d return(s), none defined: %w", len(returns), model.ErrInsufficientData)
	}

	var sd float64
	if len(values) >= 2 {
		sd = stat.StdDev(values, nil)
	}
	return model.NewSummary(len(values), stat.Mean(values, nil), median(values), sd), nil
}

// Mean returns the mean of the defined values of returns.
func Mean(returns model.ReturnSeries) (float64, error) {
	values := returns.DefinedValues()
	if len(values) == 0 {
		return 0, fmt.Errorf("mean of %d return(s), none defined: %w", len(returns), model.ErrInsufficientData)
	}
	return stat.Mean(values, nil), nil
}

// median averages the two middle values for even counts. values is not modified.
func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// MaxReturnDate returns the timestamp of the bar that closed the largest
// defined return. Ties resolve to the earliest occurrence.
func MaxReturnDate(series *model.PriceSeries, returns model.ReturnSeries) (time.Time, error) {
	if len(returns) != max(series.Len()-1, 0) {
		return time.Time{}, fmt.Errorf("%d return(s) for %d bar(s): %w", len(returns), series.Len(), model.ErrInsufficientData)
	}

	best := -1
	bestValue := math.Inf(-1)
	for i, p := range returns {
		if p.Defined() && p.Value > bestValue {
			best, bestValue = i, p.Value
		}
	}
	if best < 0 {
		return time.Time{}, fmt.Errorf("max return: no defined values: %w", model.ErrInsufficientData)
	}
	// returns[i] is the move into series.Records[i+1].
	return series.Records[best+1].Time, nil
}
