package recorder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"CryptoScope/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRecorder_RecordSeries(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	rec, err := NewCSVRecorder(dir)
	require.NoError(t, err)
	defer rec.Close()

	series := &model.PriceSeries{
		Asset: model.Bitcoin,
		Records: []model.OHLC{
			{
				Time:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Open:   decimal.RequireFromString("42000.1"),
				High:   decimal.RequireFromString("42500"),
				Low:    decimal.RequireFromString("41800.5"),
				Close:  decimal.RequireFromString("42283.6"),
				VWAP:   decimal.RequireFromString("42150.2"),
				Volume: decimal.RequireFromString("1523.12345678"),
				Count:  20311,
			},
			{
				Time:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
				Open:   decimal.RequireFromString("42283.6"),
				High:   decimal.RequireFromString("45900"),
				Low:    decimal.RequireFromString("42200"),
				Close:  decimal.RequireFromString("44950"),
				VWAP:   decimal.RequireFromString("44800"),
				Volume: decimal.RequireFromString("3000"),
				Count:  40000,
			},
		},
	}
	require.NoError(t, rec.RecordSeries(series))

	path := rec.Path(model.Bitcoin)
	assert.Equal(t, filepath.Join(dir, "XXBTZUSD_data.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ",timestamp,open,high,low,close,vwap,volume,count", lines[0])
	assert.Equal(t, "0,2024-01-01 00:00:00,42000.1,42500,41800.5,42283.6,42150.2,1523.12345678,20311", lines[1])
	assert.Equal(t, "1,2024-01-02 00:00:00,42283.6,45900,42200,44950,44800,3000,40000", lines[2])
}

func TestCSVRecorder_Overwrites(t *testing.T) {
	rec, err := NewCSVRecorder(t.TempDir())
	require.NoError(t, err)

	one := &model.PriceSeries{Asset: model.Ripple, Records: []model.OHLC{{Time: time.Unix(0, 0)}, {Time: time.Unix(86400, 0)}}}
	two := &model.PriceSeries{Asset: model.Ripple, Records: []model.OHLC{{Time: time.Unix(0, 0)}}}
	require.NoError(t, rec.RecordSeries(one))
	require.NoError(t, rec.RecordSeries(two))

	data, err := os.ReadFile(rec.Path(model.Ripple))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 2)
}

func TestCSVRecorder_NilSeries(t *testing.T) {
	rec, err := NewCSVRecorder(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, rec.RecordSeries(nil))
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	assert.NoError(t, r.RecordSeries(nil))
	assert.NoError(t, r.Close())
}
