package ingest

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"CryptoScope/internal/model"

	"github.com/shopspring/decimal"
)

// Fields is the arity of one raw OHLC row:
// timestamp, open, high, low, close, vwap, volume, count.
const Fields = 8

var priceFields = [...]string{"open", "high", "low", "close", "vwap", "volume"}

// Ingest converts raw exchange rows into a PriceSeries, validating every row.
// Rows must arrive in strictly increasing timestamp order.
func Ingest(asset model.Asset, raw [][]any) (*model.PriceSeries, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: %w", asset, model.ErrEmptyPayload)
	}

	records := make([]model.OHLC, 0, len(raw))
	for i, row := range raw {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", asset, i, err)
		}
		if n := len(records); n > 0 && !rec.Time.After(records[n-1].Time) {
			return nil, fmt.Errorf("%s row %d: timestamp %d not after %d: %w",
				asset, i, rec.Time.Unix(), records[n-1].Time.Unix(), model.ErrMalformedRecord)
		}
		records = append(records, rec)
	}

	return &model.PriceSeries{
		Asset:     asset,
		Records:   records,
		FetchedAt: time.Now(),
	}, nil
}

func parseRow(row []any) (model.OHLC, error) {
	if len(row) != Fields {
		return model.OHLC{}, fmt.Errorf("expected %d fields, got %d: %w", Fields, len(row), model.ErrMalformedRecord)
	}

	ts, err := toInt(row[0])
	if err != nil {
		return model.OHLC{}, fmt.Errorf("timestamp: %v: %w", err, model.ErrMalformedRecord)
	}

	var prices [len(priceFields)]decimal.Decimal
	for k, name := range priceFields {
		d, err := toDecimal(row[k+1])
		if err != nil {
			return model.OHLC{}, fmt.Errorf("%s: %v: %w", name, err, model.ErrMalformedRecord)
		}
		prices[k] = d
	}

	count, err := toInt(row[7])
	if err != nil {
		return model.OHLC{}, fmt.Errorf("count: %v: %w", err, model.ErrMalformedRecord)
	}

	return model.OHLC{
		Time:   time.Unix(ts, 0).UTC(),
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		VWAP:   prices[4],
		Volume: prices[5],
		Count:  count,
	}, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case string:
		return decimal.NewFromString(n)
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Decimal{}, fmt.Errorf("non-finite value %v", n)
		}
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unsupported type %T", v)
	}
}

func toInt(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		return strconv.ParseInt(n.String(), 10, 64)
	case string:
		return strconv.ParseInt(n, 10, 64)
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("not an integer: %v", n)
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
