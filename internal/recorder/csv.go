package recorder

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"CryptoScope/internal/model"

	"github.com/mitchellh/go-homedir"
)

// TimeLayout is the timestamp format written to snapshot files.
const TimeLayout = "2006-01-02 15:04:05"

var header = []string{"", "timestamp", "open", "high", "low", "close", "vwap", "volume", "count"}

// CSVRecorder writes one {pair}_data.csv file per asset, overwritten on every fetch.
type CSVRecorder struct {
	dir string
	mu  sync.Mutex
}

// NewCSVRecorder expands dir (a leading ~ is allowed) and creates it if needed.
func NewCSVRecorder(dir string) (*CSVRecorder, error) {
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("expand csv dir %q: %w", dir, err)
	}
	if err := os.MkdirAll(expanded, 0o755); err != nil {
		return nil, fmt.Errorf("create csv dir: %w", err)
	}

	log.Printf("[INFO] csv recorder writing to %s", expanded)
	return &CSVRecorder{dir: expanded}, nil
}

// Path returns the snapshot file for an asset.
func (r *CSVRecorder) Path(asset model.Asset) string {
	return filepath.Join(r.dir, asset.Pair()+"_data.csv")
}

func (r *CSVRecorder) RecordSeries(series *model.PriceSeries) error {
	if series == nil {
		return fmt.Errorf("record: nil series")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.Path(series.Asset)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range series.Records {
		row := []string{
			strconv.Itoa(i),
			rec.Time.UTC().Format(TimeLayout),
			rec.Open.String(),
			rec.High.String(),
			rec.Low.String(),
			rec.Close.String(),
			rec.VWAP.String(),
			rec.Volume.String(),
			strconv.FormatInt(rec.Count, 10),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

func (r *CSVRecorder) Close() error {
	log.Println("[INFO] closing csv recorder")
	return nil
}
