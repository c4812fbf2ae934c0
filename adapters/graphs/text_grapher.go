// Package graphs implements the plotting port as chart-spec construction
// plus a plain-text sketch. It never reports errors back to the analysis
// core; a failed render is logged and swallowed.
package graphs

import (
	"fmt"
	"io"
	"log"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/montanaflynn/stats"
)

const barWidth = 40

// TextGrapher renders chart sketches to a writer and keeps the built
// ChartConfig for each call so callers can persist or serve them.
// Safe for concurrent use; the sweep runs analyses in parallel against
// a single grapher.
type TextGrapher struct {
	mu     sync.Mutex
	out    io.Writer
	charts []ChartConfig
}

// NewTextGrapher creates a grapher writing to out. A nil writer collects
// chart configs without rendering anything.
func NewTextGrapher(out io.Writer) *TextGrapher {
	return &TextGrapher{out: out}
}

// Charts returns a snapshot of the chart configs built so far, in call order
func (g *TextGrapher) Charts() []ChartConfig {
	g.mu.Lock()
	defer g.mu.Unlock()
	charts := make([]ChartConfig, len(g.charts))
	copy(charts, g.charts)
	return charts
}

// Histogram renders the distribution of one sample as a binned bar sketch
func (g *TextGrapher) Histogram(data []float64, label string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	clean := dropNaN(data)
	if len(clean) == 0 {
		log.Printf("[TextGrapher] histogram %q skipped: no plottable data", label)
		return
	}

	min, _ := stats.Min(clean)
	max, _ := stats.Max(clean)
	bins := histogramBins(len(clean))
	width := (max - min) / float64(bins)

	counts := make([]int, bins)
	for _, v := range clean {
		idx := bins - 1
		if width > 0 {
			idx = int((v - min) / width)
			if idx >= bins {
				idx = bins - 1
			}
		}
		counts[idx]++
	}

	config := ChartConfig{ChartType: "histogram", Title: label, XAxis: label, YAxis: "Count"}
	series := ChartSeries{Name: label}
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	g.printf("\n%s\n", label)
	for i, c := range counts {
		lo := min + float64(i)*width
		series.Data = append(series.Data, ChartPoint{Label: fmt.Sprintf("%.2f", lo), Value: float64(c)})
		g.printf("%10.2f | %s %d\n", lo, bar(c, maxCount), c)
	}
	config.Series = []ChartSeries{series}
	g.charts = append(g.charts, config)
}

// Scatter builds a point series for two paired samples
func (g *TextGrapher) Scatter(x, y []float64, xLabel, yLabel string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(x) != len(y) || len(x) == 0 {
		log.Printf("[TextGrapher] scatter %q/%q skipped: unpaired data", xLabel, yLabel)
		return
	}

	series := ChartSeries{Name: yLabel}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		series.Data = append(series.Data, ChartPoint{Label: fmt.Sprintf("%.4f", x[i]), Value: y[i]})
	}

	g.charts = append(g.charts, ChartConfig{
		ChartType: "scatter",
		Title:     fmt.Sprintf("%s vs %s", yLabel, xLabel),
		XAxis:     xLabel,
		YAxis:     yLabel,
		Series:    []ChartSeries{series},
	})
	g.printf("\n%s vs %s: %d points\n", yLabel, xLabel, len(series.Data))
}

// BoxPlot sketches the five-number summary of each group, in order
func (g *TextGrapher) BoxPlot(groups [][]float64, labels []string, xLabel, yLabel string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	config := ChartConfig{ChartType: "boxplot", Title: xLabel, XAxis: xLabel, YAxis: yLabel}

	g.printf("\n%s by %s\n", yLabel, xLabel)
	for i, group := range groups {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}
		clean := dropNaN(group)
		if len(clean) == 0 {
			continue
		}

		min, _ := stats.Min(clean)
		q1, _ := stats.Percentile(clean, 25)
		med, _ := stats.Median(clean)
		q3, _ := stats.Percentile(clean, 75)
		max, _ := stats.Max(clean)

		config.Series = append(config.Series, ChartSeries{
			Name: label,
			Data: []ChartPoint{
				{Label: "min", Value: min},
				{Label: "q1", Value: q1},
				{Label: "median", Value: med},
				{Label: "q3", Value: q3},
				{Label: "max", Value: max},
			},
		})
		g.printf("%12s | min=%.4f q1=%.4f med=%.4f q3=%.4f max=%.4f\n", label, min, q1, med, q3, max)
	}
	g.charts = append(g.charts, config)
}

// Frequency sketches counts of categorical values, most frequent first
func (g *TextGrapher) Frequency(categories []string, counts []int, label string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(categories) != len(counts) {
		log.Printf("[TextGrapher] frequency %q skipped: mismatched inputs", label)
		return
	}

	type pair struct {
		category string
		count    int
	}
	pairs := make([]pair, len(categories))
	maxCount := 0
	for i := range categories {
		pairs[i] = pair{categories[i], counts[i]}
		if counts[i] > maxCount {
			maxCount = counts[i]
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].count > pairs[b].count })

	config := ChartConfig{ChartType: "frequency", Title: label, XAxis: label, YAxis: "Count"}
	series := ChartSeries{Name: label}

	g.printf("\n%s\n", label)
	for _, p := range pairs {
		series.Data = append(series.Data, ChartPoint{Label: p.category, Value: float64(p.count)})
		g.printf("%15s | %s %d\n", p.category, bar(p.count, maxCount), p.count)
	}
	config.Series = []ChartSeries{series}
	g.charts = append(g.charts, config)
}

func (g *TextGrapher) printf(format string, args ...interface{}) {
	if g.out == nil {
		return
	}
	if _, err := fmt.Fprintf(g.out, format, args...); err != nil {
		log.Printf("[TextGrapher] render failed: %v", err)
	}
}

func bar(count, max int) string {
	if max == 0 {
		return ""
	}
	n := count * barWidth / max
	return strings.Repeat("#", n)
}

// histogramBins uses the square root rule, clamped to a sane range
func histogramBins(n int) int {
	bins := int(math.Ceil(math.Sqrt(float64(n))))
	if bins < 1 {
		bins = 1
	}
	if bins > 20 {
		bins = 20
	}
	return bins
}

func dropNaN(data []float64) []float64 {
	clean := make([]float64, 0, len(data))
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		clean = append(clean, v)
	}
	return clean
}
