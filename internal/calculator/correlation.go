package calculator

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"CryptoScope/internal/model"

	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix computes pairwise Pearson correlations between the return
// series of each asset. Series are aligned by timestamp and only observations
// defined in both series of a pair are used.
func CorrelationMatrix(returnsByAsset map[model.Asset]model.ReturnSeries) (*model.CorrelationMatrix, error) {
	assets := sortedAssets(returnsByAsset)
	n := len(assets)
	if n == 0 {
		return nil, fmt.Errorf("correlation matrix: no assets: %w", model.ErrInsufficientData)
	}

	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
	}

	var errs []error
	for i, a := range assets {
		if defined := len(returnsByAsset[a].DefinedValues()); defined < 2 {
			errs = append(errs, fmt.Errorf("%s: %d defined return(s): %w", a, defined, model.ErrInsufficientData))
			values[i][i] = math.NaN()
		} else {
			values[i][i] = 1.0
		}
		for j := i + 1; j < n; j++ {
			b := assets[j]
			r, err := Correlation(returnsByAsset[a], returnsByAsset[b])
			if err != nil {
				errs = append(errs, fmt.Errorf("%s/%s: %w", a, b, err))
			}
			values[i][j], values[j][i] = r, r
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &model.CorrelationMatrix{Assets: assets, Values: values}, nil
}

// Correlation returns the Pearson coefficient of x and y over the timestamps
// where both are defined.
func Correlation(x, y model.ReturnSeries) (float64, error) {
	xs, ys := align(x, y)
	if len(xs) < 2 {
		return math.NaN(), fmt.Errorf("%d aligned observation(s): %w", len(xs), model.ErrInsufficientData)
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return math.NaN(), fmt.Errorf("zero variance over %d observation(s): %w", len(xs), model.ErrInsufficientData)
	}
	// Rounding can push |r| marginally past 1.
	return math.Max(-1, math.Min(1, r)), nil
}

// MeanReturns computes the mean return of each asset independently.
func MeanReturns(returnsByAsset map[model.Asset]model.ReturnSeries) (map[model.Asset]float64, error) {
	means := make(map[model.Asset]float64, len(returnsByAsset))
	var errs []error
	for _, a := range sortedAssets(returnsByAsset) {
		m, err := Mean(returnsByAsset[a])
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a, err))
			continue
		}
		means[a] = m
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return means, nil
}

// align pairs the defined values of x and y that share a timestamp, in x's order.
func align(x, y model.ReturnSeries) (xs, ys []float64) {
	byTime := make(map[int64]float64, len(y))
	for _, p := range y {
		if p.Defined() {
			byTime[p.Time.Unix()] = p.Value
		}
	}
	for _, p := range x {
		if !p.Defined() {
			continue
		}
		if v, ok := byTime[p.Time.Unix()]; ok {
			xs = append(xs, p.Value)
			ys = append(ys, v)
		}
	}
	return xs, ys
}

func sortedAssets(m map[model.Asset]model.ReturnSeries) []model.Asset {
	assets := make([]model.Asset, 0, len(m))
	for a := range m {
		assets = append(assets, a)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i] < assets[j] })
	return assets
}
