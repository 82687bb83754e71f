package chart

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sort"

	"CryptoScope/internal/model"

	"github.com/mitchellh/go-homedir"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	green = color.RGBA{G: 128, A: 255}
	red   = color.RGBA{R: 220, A: 255}
)

// barColors mirrors a qualitative palette, one color per asset.
var barColors = []color.Color{
	color.RGBA{R: 228, G: 26, B: 28, A: 255},
	color.RGBA{R: 55, G: 126, B: 184, A: 255},
	color.RGBA{R: 77, G: 175, B: 74, A: 255},
}

// PNGRenderer writes charts as PNG files into a directory.
type PNGRenderer struct {
	dir string
}

// NewPNGRenderer expands dir (a leading ~ is allowed) and creates it if needed.
func NewPNGRenderer(dir string) (*PNGRenderer, error) {
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("expand chart dir %q: %w", dir, err)
	}
	if err := os.MkdirAll(expanded, 0o755); err != nil {
		return nil, fmt.Errorf("create chart dir: %w", err)
	}
	log.Printf("[INFO] charts writing to %s", expanded)
	return &PNGRenderer{dir: expanded}, nil
}

// PriceHistory plots closing prices over time as a green line.
func (r *PNGRenderer) PriceHistory(series *model.PriceSeries) (string, error) {
	if series.Len() == 0 {
		return "", fmt.Errorf("price chart: %w", model.ErrInsufficientData)
	}
	pts := make(plotter.XYs, series.Len())
	for i, rec := range series.Records {
		pts[i].X = float64(rec.Time.Unix())
		pts[i].Y = rec.Close.InexactFloat64()
	}

	label := series.Asset.String()
	p := timePlot(label+" Historical Prices", "Closing Price")
	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", fmt.Errorf("price line: %w", err)
	}
	line.Color = green
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("Closing Price (%s)", label), line)

	return r.save(p, 6*vg.Inch, 3*vg.Inch, series.Asset.Pair()+"_prices.png")
}

// LogReturns plots the defined log returns over time as a red line.
func (r *PNGRenderer) LogReturns(asset model.Asset, returns model.ReturnSeries) (string, error) {
	pts := make(plotter.XYs, 0, len(returns))
	for _, pt := range returns {
		if !pt.Defined() {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(pt.Time.Unix()), Y: pt.Value})
	}
	if len(pts) == 0 {
		return "", fmt.Errorf("returns chart %s: %w", asset, model.ErrInsufficientData)
	}

	p := timePlot(asset.String()+" Logarithmic Returns", "Logarithmic Returns")
	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", fmt.Errorf("returns line: %w", err)
	}
	line.Color = red
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("Logarithmic Returns (%s)", asset), line)

	return r.save(p, 6*vg.Inch, 3*vg.Inch, asset.Pair()+"_returns.png")
}

// CorrelationHeatmap draws the matrix as a heatmap annotated with five decimals.
func (r *PNGRenderer) CorrelationHeatmap(m *model.CorrelationMatrix) (string, error) {
	n := len(m.Assets)
	if n == 0 {
		return "", fmt.Errorf("heatmap: %w", model.ErrInsufficientData)
	}

	p := plot.New()
	p.Title.Text = "Correlation Matrix of Returns"

	hm := plotter.NewHeatMap(matrixGrid{m}, palette.Heat(12, 1))
	hm.Min, hm.Max = -1, 1
	p.Add(hm)

	names := make([]string, n)
	xys := make(plotter.XYs, 0, n*n)
	labels := make([]string, 0, n*n)
	for i, a := range m.Assets {
		names[i] = a.String()
		for j := range m.Assets {
			xys = append(xys, plotter.XY{X: float64(j), Y: float64(i)})
			labels = append(labels, fmt.Sprintf("%.5f", m.Values[i][j]))
		}
	}
	annotations, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return "", fmt.Errorf("heatmap labels: %w", err)
	}
	p.Add(annotations)
	p.NominalX(names...)
	p.NominalY(names...)

	return r.save(p, 6*vg.Inch, 4*vg.Inch, "correlation.png")
}

// MeanReturns draws one bar per asset.
func (r *PNGRenderer) MeanReturns(means map[model.Asset]float64) (string, error) {
	if len(means) == 0 {
		return "", fmt.Errorf("mean returns chart: %w", model.ErrInsufficientData)
	}
	assets := make([]model.Asset, 0, len(means))
	for a := range means {
		assets = append(assets, a)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i] < assets[j] })

	p := plot.New()
	p.Title.Text = "Mean Returns of Cryptocurrencies"
	p.X.Label.Text = "Cryptocurrency"
	p.Y.Label.Text = "Mean Returns"

	names := make([]string, len(assets))
	for i, a := range assets {
		names[i] = a.String()
		bar, err := plotter.NewBarChart(plotter.Values{means[a]}, vg.Points(30))
		if err != nil {
			return "", fmt.Errorf("bar %s: %w", a, err)
		}
		bar.XMin = float64(i)
		bar.Color = barColors[i%len(barColors)]
		p.Add(bar)
	}
	p.NominalX(names...)

	return r.save(p, 4*vg.Inch, 3*vg.Inch, "mean_returns.png")
}

func (r *PNGRenderer) save(p *plot.Plot, w, h vg.Length, name string) (string, error) {
	path := filepath.Join(r.dir, name)
	if err := p.Save(w, h, path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

func timePlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Add(plotter.NewGrid())
	return p
}

// matrixGrid adapts a CorrelationMatrix to plotter.GridXYZ; column c is X, row r is Y.
type matrixGrid struct {
	m *model.CorrelationMatrix
}

func (g matrixGrid) Dims() (c, r int)   { n := len(g.m.Assets); return n, n }
func (g matrixGrid) Z(c, r int) float64 { return g.m.Values[r][c] }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }
