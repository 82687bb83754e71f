package model

import "fmt"

// Summary holds descriptive statistics over the defined values of a ReturnSeries.
type Summary struct {
	Count  int
	Mean   float64
	Median float64

	stdDev float64
}

// NewSummary builds a Summary. stdDev is ignored when count < 2.
func NewSummary(count int, mean, median, stdDev float64) Summary {
	s := Summary{Count: count, Mean: mean, Median: median}
	if count >= 2 {
		s.stdDev = stdDev
	}
	return s
}

// StdDev returns the sample (n-1) standard deviation.
func (s Summary) StdDev() (float64, error) {
	if s.Count < 2 {
		return 0, fmt.Errorf("standard deviation of %d value(s): %w", s.Count, ErrInsufficientData)
	}
	return s.stdDev, nil
}

// CorrelationMatrix is a symmetric Asset x Asset matrix of Pearson coefficients.
type CorrelationMatrix struct {
	Assets []Asset
	Values [][]float64
}

// At returns the coefficient for the pair (a, b).
func (m *CorrelationMatrix) At(a, b Asset) (float64, bool) {
	i, j := m.index(a), m.index(b)
	if i < 0 || j < 0 {
		return 0, false
	}
	return m.Values[i][j], true
}

func (m *CorrelationMatrix) index(a Asset) int {
	for i, x := range m.Assets {
		if x == a {
			return i
		}
	}
	return -1
}
