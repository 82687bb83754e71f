package chart

import "CryptoScope/internal/model"

// Renderer draws analysis charts and returns the path of each file written.
// An empty path means nothing was written.
type Renderer interface {
	PriceHistory(series *model.PriceSeries) (string, error)
	LogReturns(asset model.Asset, returns model.ReturnSeries) (string, error)
	CorrelationHeatmap(m *model.CorrelationMatrix) (string, error)
	MeanReturns(means map[model.Asset]float64) (string, error)
}

// NoopRenderer is used when chart output is disabled.
type NoopRenderer struct{}

func NewNoopRenderer() *NoopRenderer { return &NoopRenderer{} }

func (NoopRenderer) PriceHistory(*model.PriceSeries) (string, error)            { return "", nil }
func (NoopRenderer) LogReturns(model.Asset, model.ReturnSeries) (string, error) { return "", nil }
func (NoopRenderer) CorrelationHeatmap(*model.CorrelationMatrix) (string, error) {
	return "", nil
}
func (NoopRenderer) MeanReturns(map[model.Asset]float64) (string, error) { return "", nil }
