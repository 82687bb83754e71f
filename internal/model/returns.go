package model

import (
	"math"
	"time"
)

// ReturnPoint is one log return, stamped with the later of its two bars.
// Value is NaN when the return is undefined.
type ReturnPoint struct {
	Time  time.Time
	Value float64
}

// Defined reports whether the point carries a usable value.
func (p ReturnPoint) Defined() bool {
	return !math.IsNaN(p.Value)
}

// ReturnSeries is positionally aligned with its source PriceSeries shifted by one.
type ReturnSeries []ReturnPoint

// Values returns the raw values, sentinels included.
func (r ReturnSeries) Values() []float64 {
	out := make([]float64, len(r))
	for i, p := range r {
		out[i] = p.Value
	}
	return out
}

// DefinedValues returns the values with sentinels removed.
func (r ReturnSeries) DefinedValues() []float64 {
	out := make([]float64, 0, len(r))
	for _, p := range r {
		if p.Defined() {
			out = append(out, p.Value)
		}
	}
	return out
}
