package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"CryptoScope/internal/analyzer"
	"CryptoScope/internal/model"

	"github.com/dustin/go-humanize"
)

// DateLayout is used for every timestamp shown to the user.
const DateLayout = "2006-01-02 15:04:05"

// HeadRows is how many leading records FormatHead shows.
const HeadRows = 5

// FormatHead renders the first n records of a series as an aligned table.
func FormatHead(series *model.PriceSeries, n int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%3s  %-19s %12s %12s %12s %12s %12s %16s %8s\n",
		"", "timestamp", "open", "high", "low", "close", "vwap", "volume", "count"))
	for i, r := range series.Head(n) {
		b.WriteString(fmt.Sprintf("%3d  %-19s %12s %12s %12s %12s %12s %16s %8d\n",
			i, r.Time.UTC().Format(DateLayout),
			r.Open.String(), r.High.String(), r.Low.String(), r.Close.String(), r.VWAP.String(),
			r.Volume.String(), r.Count))
	}
	return b.String()
}

// FormatDataQuality summarizes what was fetched and how many returns are undefined.
func FormatDataQuality(rep *analyzer.AssetReport) string {
	var b strings.Builder
	s := rep.Series
	b.WriteString("Data quality:\n")
	b.WriteString(fmt.Sprintf("  Records: %d\n", s.Len()))
	if s.Len() > 0 {
		first, last := s.Records[0].Time, s.Records[s.Len()-1].Time
		b.WriteString(fmt.Sprintf("  Range: %s to %s\n", first.UTC().Format("2006-01-02"), last.UTC().Format("2006-01-02")))
	}

	var trades int64
	var volume float64
	for _, r := range s.Records {
		trades += r.Count
		volume += r.Volume.InexactFloat64()
	}
	b.WriteString(fmt.Sprintf("  Price range: %s to %s (last close at %.0f%% of range)\n", rep.Low.String(), rep.High.String(), rep.Position*100))
	b.WriteString(fmt.Sprintf("  Total volume: %s\n", humanize.CommafWithDigits(volume, 2)))
	b.WriteString(fmt.Sprintf("  Total trades: %s\n", humanize.Comma(trades)))
	b.WriteString(fmt.Sprintf("  Undefined returns: %d of %d\n", rep.Undefined, len(rep.Returns)))
	return b.String()
}

// FormatSummary renders the descriptive statistics of the asset's log returns.
func FormatSummary(rep *analyzer.AssetReport) string {
	var b strings.Builder
	b.WriteString("Analysis:\n")
	b.WriteString(fmt.Sprintf("  Mean of the logarithmic returns: %.8f\n", rep.Summary.Mean))
	b.WriteString(fmt.Sprintf("  Median of the logarithmic returns: %.8f\n", rep.Summary.Median))
	if sd, err := rep.Summary.StdDev(); err != nil {
		b.WriteString(fmt.Sprintf("  Standard deviation of the logarithmic returns: n/a (%v)\n", err))
	} else {
		b.WriteString(fmt.Sprintf("  Standard deviation of the logarithmic returns: %.8f\n", sd))
	}
	b.WriteString(fmt.Sprintf("Date with the highest return (%s): %s\n", rep.Asset, rep.MaxReturnDate.UTC().Format(DateLayout)))
	return b.String()
}

// FormatAssetReport renders everything shown after fetching one asset.
func FormatAssetReport(rep *analyzer.AssetReport) string {
	var b strings.Builder
	b.WriteString(FormatHead(rep.Series, HeadRows))
	b.WriteString(fmt.Sprintf("\n%s Data:\n", rep.Asset))
	b.WriteString(FormatDataQuality(rep))
	b.WriteString(FormatSummary(rep))
	return b.String()
}

// FormatCorrelation renders the matrix with five decimals per coefficient.
func FormatCorrelation(m *model.CorrelationMatrix) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-10s", ""))
	for _, a := range m.Assets {
		b.WriteString(fmt.Sprintf("%10s", a))
	}
	b.WriteString("\n")
	for i, a := range m.Assets {
		b.WriteString(fmt.Sprintf("%-10s", a))
		for j := range m.Assets {
			b.WriteString(fmt.Sprintf("%10.5f", m.Values[i][j]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatMeanReturns lists each asset's mean log return in asset order.
func FormatMeanReturns(means map[model.Asset]float64) string {
	assets := make([]model.Asset, 0, len(means))
	for a := range means {
		assets = append(assets, a)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i] < assets[j] })

	var b strings.Builder
	b.WriteString("Mean returns:\n")
	for _, a := range assets {
		b.WriteString(fmt.Sprintf("  %-10s %+.8f\n", a, means[a]))
	}
	return b.String()
}

// FormatDigest renders a short HTML digest of a scheduled refresh for Telegram.
// failures holds one error per asset that could not be refreshed.
func FormatDigest(at time.Time, reports []*analyzer.AssetReport, failures []error) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>CryptoScope</b> | %s\n\n", at.UTC().Format("2006-01-02 15:04")))
	for _, rep := range reports {
		last := rep.Series.Records[rep.Series.Len()-1]
		b.WriteString(fmt.Sprintf("<b>%s</b>: close %s (%s bars)\n", rep.Asset, last.Close.StringFixed(4), humanize.Comma(int64(rep.Series.Len()))))
		b.WriteString(fmt.Sprintf("  mean %+.6f | median %+.6f", rep.Summary.Mean, rep.Summary.Median))
		if sd, err := rep.Summary.StdDev(); err == nil {
			b.WriteString(fmt.Sprintf(" | sd %.6f", sd))
		}
		b.WriteString(fmt.Sprintf("\n  best day %s\n", rep.MaxReturnDate.UTC().Format("2006-01-02")))
	}
	if len(failures) > 0 {
		b.WriteString(fmt.Sprintf("\n⚠️ %s\n", errors.Join(failures...)))
	}
	return b.String()
}
