package recorder

import "CryptoScope/internal/model"

// Recorder persists fetched price series for later inspection.
type Recorder interface {
	RecordSeries(series *model.PriceSeries) error
	Close() error
}
