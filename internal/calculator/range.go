package calculator

import (
	"errors"
	"fmt"

	"CryptoScope/internal/model"

	"github.com/shopspring/decimal"
)

// PriceRange scans every bar of the series and returns the highest high and lowest low.
func PriceRange(series *model.PriceSeries) (high, low decimal.Decimal, err error) {
	if series.Len() == 0 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("price range: no bars: %w", model.ErrInsufficientData)
	}
	high, low = series.Records[0].High, series.Records[0].Low
	for _, r := range series.Records[1:] {
		if r.High.GreaterThan(high) {
			high = r.High
		}
		if r.Low.LessThan(low) {
			low = r.Low
		}
	}
	return high, low, nil
}

// RangePosition returns where current sits within [low, high], clamped to 0.0~1.0.
func RangePosition(current, high, low decimal.Decimal) (float64, error) {
	if high.Equal(low) {
		return 0.5, nil
	}
	if high.LessThan(low) {
		return 0, errors.New("high must be >= low")
	}
	pos := current.Sub(low).Div(high.Sub(low)).InexactFloat64()
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}
