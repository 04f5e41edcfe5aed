// Package render draws aggregation tables with gonum/plot. It is pure
// presentation: every function takes a dense table (or prepared point
// series) and writes one image, performing no data transformation.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"diskplot/internal/aggregate"
	"diskplot/internal/logging"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Options carries the presentation knobs shared by all chart kinds.
type Options struct {
	Title   string
	XLabel  string
	YLabel  string
	XLabels []string // tick labels for bar categories
	YMin    float64
	YMax    float64 // 0 leaves the axis to the data
	Width   vg.Length
	Height  vg.Length
}

func (o Options) size() (vg.Length, vg.Length) {
	w, h := o.Width, o.Height
	if w == 0 {
		w = 8 * vg.Inch
	}
	if h == 0 {
		h = 5 * vg.Inch
	}
	return w, h
}

func newPlot(opts Options) *plot.Plot {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Legend.Top = true
	p.Legend.Padding = vg.Points(2)
	p.Add(plotter.NewGrid())
	return p
}

func save(p *plot.Plot, opts Options, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	w, h := opts.size()
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}

	logging.GetLogger().WithFields(logrus.Fields{
		"path": path,
	}).Debug("Chart written")
	return nil
}

// GroupedBars draws one bar group per category with one bar per series,
// the layout of the filebench and trace figures.
func GroupedBars(table *aggregate.Table, opts Options, path string) error {
	p := newPlot(opts)

	barWidth := vg.Points(18)
	gap := vg.Points(2)
	n := len(table.Series)

	for i, series := range table.Series {
		bars, err := plotter.NewBarChart(plotter.Values(table.Row(series)), barWidth)
		if err != nil {
			return fmt.Errorf("failed to build bars for %s: %w", series, err)
		}
		bars.Color = SeriesColor(i)
		bars.LineStyle.Width = 0
		bars.Offset = vg.Length(float64(i)-float64(n-1)/2) * (barWidth + gap)
		p.Add(bars)
		p.Legend.Add(series, bars)
	}

	labels := opts.XLabels
	if len(labels) == 0 {
		labels = table.Categories
	}
	p.NominalX(labels...)

	p.Y.Min = opts.YMin
	if opts.YMax > 0 {
		p.Y.Max = opts.YMax
	}

	return save(p, opts, path)
}

// StackedBars draws one bar per category with the series stacked, used for
// the cost-breakdown percentages. Series order is bottom-up.
func StackedBars(table *aggregate.Table, opts Options, path string) error {
	p := newPlot(opts)

	barWidth := vg.Points(30)
	var prev *plotter.BarChart

	for i, series := range table.Series {
		bars, err := plotter.NewBarChart(plotter.Values(table.Row(series)), barWidth)
		if err != nil {
			return fmt.Errorf("failed to build bars for %s: %w", series, err)
		}
		bars.Color = StackColor(i)
		bars.LineStyle.Width = 0
		if prev != nil {
			bars.StackOn(prev)
		}
		prev = bars
		p.Add(bars)
		p.Legend.Add(series, bars)
	}

	labels := opts.XLabels
	if len(labels) == 0 {
		labels = table.Categories
	}
	p.NominalX(labels...)

	p.Y.Min = opts.YMin
	if opts.YMax > 0 {
		p.Y.Max = opts.YMax
	}

	return save(p, opts, path)
}

// Series is one named polyline for a line chart.
type Series struct {
	Name   string
	Points plotter.XYs
}

// Lines draws marker-and-line series, the layout of the cache-size,
// cleaning and disk-utility figures.
func Lines(series []Series, opts Options, path string) error {
	p := newPlot(opts)

	for i, s := range series {
		line, points, err := plotter.NewLinePoints(s.Points)
		if err != nil {
			return fmt.Errorf("failed to build line for %s: %w", s.Name, err)
		}
		line.Color = SeriesColor(i)
		line.Width = vg.Points(1.5)
		line.Dashes = SeriesDashes(i)
		points.Color = SeriesColor(i)
		points.Shape = SeriesGlyph(i)
		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
	}

	p.Y.Min = opts.YMin
	if opts.YMax > 0 {
		p.Y.Max = opts.YMax
	}

	return save(p, opts, path)
}
