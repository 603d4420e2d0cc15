// Package render turns numeric aggregates into PNG artifacts on disk. Both
// renderers refuse to touch the output path when the aggregate is empty so
// an existing image is never clobbered by a "nothing to plot" run.
package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrNoData reports that an aggregate had no plottable values. Callers
// surface it as a user message rather than a failure.
var ErrNoData = errors.New("no data to plot")

// Histogram renders a speed distribution as a bar chart. The bin count is
// fixed at construction so a given dataset always produces the same image.
type Histogram struct {
	bins  int
	clock clockwork.Clock
}

// NewHistogram creates a histogram renderer with the given bin count.
func NewHistogram(bins int, clock clockwork.Clock) *Histogram {
	return &Histogram{bins: bins, clock: clock}
}

// Render bins the values and writes a PNG bar chart to path, overwriting any
// existing file. Returns ErrNoData without writing when values is empty.
func (h *Histogram) Render(values []float64, path string) error {
	if len(values) == 0 {
		return ErrNoData
	}

	bars := binValues(values, h.bins)

	ch := chart.BarChart{
		Title:    fmt.Sprintf("Ship Speeds, knots (n=%d, %s)", len(values), h.clock.Now().UTC().Format("2006-01-02")),
		Width:    1024,
		Height:   512,
		BarWidth: 30,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	return writePNG(path, func(f *os.File) error {
		return ch.Render(chart.PNG, f)
	})
}

// binValues assigns values to equal-width bins over [min, max]. A sequence
// with a single distinct value collapses to one bin holding everything.
func binValues(values []float64, bins int) []chart.Value {
	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	if minV == maxV {
		return []chart.Value{{
			Label: fmt.Sprintf("%.1f", minV),
			Value: float64(len(values)),
		}}
	}

	width := (maxV - minV) / float64(bins)
	counts := make([]int, bins)
	for _, v := range values {
		i := int((v - minV) / width)
		if i >= bins { // max value lands in the last bin
			i = bins - 1
		}
		counts[i]++
	}

	bars := make([]chart.Value, bins)
	for i, count := range counts {
		lo := minV + float64(i)*width
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%.0f", lo),
			Value: float64(count),
		}
	}
	return bars
}

// writePNG creates (or truncates) path and runs the render into it. The file
// is removed again when rendering fails partway so no truncated image is
// left behind.
func writePNG(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("render %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
