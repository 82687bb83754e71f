package recorder

import "CryptoScope/internal/model"

// NoopRecorder is a no-op implementation used when CSV output is disabled.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSeries(_ *model.PriceSeries) error { return nil }
func (n *NoopRecorder) Close() error                            { return nil }
