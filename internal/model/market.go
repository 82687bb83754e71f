package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OHLC represents a single daily bar as reported by the exchange.
type OHLC struct {
	Time   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	VWAP   decimal.Decimal
	Volume decimal.Decimal
	Count  int64
}

// PriceSeries holds the bars of one asset in ascending time order.
type PriceSeries struct {
	Asset     Asset
	Records   []OHLC
	FetchedAt time.Time
}

// Len returns the number of records.
func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

// Closes returns the close prices as float64, in series order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, s.Len())
	for i, r := range s.Records {
		closes[i] = r.Close.InexactFloat64()
	}
	return closes
}

// Head returns at most n leading records.
func (s *PriceSeries) Head(n int) []OHLC {
	if s == nil {
		return nil
	}
	if n > s.Len() {
		n = s.Len()
	}
	return s.Records[:n]
}
