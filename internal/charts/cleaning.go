package charts

import (
	"errors"
	"path/filepath"

	"diskplot/internal/aggregate"
	"diskplot/internal/loader"
	"diskplot/internal/logging"
	"diskplot/internal/render"

	"gonum.org/v1/plot/plotter"
)

// CleaningOptions points at the directory holding the per-configuration
// throughput series files.
type CleaningOptions struct {
	Input  string
	Output string
}

// One series file per cleaning configuration; missing files are skipped so
// partial runs still plot.
var cleaningConfigs = []struct {
	file  string
	label string
}{
	{"throughput_gc_off.csv", "Cleaning disabled"},
	{"throughput_interval_90.csv", "Interval: 90s"},
	{"throughput_interval_60.csv", "Interval: 60s"},
	{"throughput_interval_30.csv", "Interval: 30s"},
}

// Cleaning renders throughput-per-run lines for the garbage-collection
// configurations.
func Cleaning(opts CleaningOptions) error {
	logger := logging.GetLogger()

	var series []render.Series
	for _, cfg := range cleaningConfigs {
		path := filepath.Join(opts.Input, cfg.file)
		values, err := loader.LoadSeries(path)
		if err != nil {
			if errors.Is(err, loader.ErrSourceNotFound) {
				logger.WithField("path", path).Warn("Series file not found, skipping configuration")
				continue
			}
			return err
		}
		if len(values) == 0 {
			logger.WithField("path", path).Warn("Series file has no numeric lines, skipping configuration")
			continue
		}

		pts := make(plotter.XYs, len(values))
		for i, v := range values {
			pts[i].X = float64(i + 1) // runs are 1-based
			pts[i].Y = v
		}
		series = append(series, render.Series{Name: cfg.label, Points: pts})
	}

	if len(series) == 0 {
		return aggregate.ErrEmptyResult
	}

	err := render.Lines(series, render.Options{
		XLabel: "Runs",
		YLabel: "Throughput (MB/s)",
		YMin:   100,
		YMax:   500,
	}, opts.Output)
	if err != nil {
		return err
	}

	confirm(opts.Output)
	return nil
}
