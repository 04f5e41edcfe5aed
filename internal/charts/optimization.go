package charts

import (
	"diskplot/internal/aggregate"
	"diskplot/internal/loader"
	"diskplot/internal/render"
)

// OptimizationOptions selects the input and output paths for the
// optimization ablation.
type OptimizationOptions struct {
	Input  string
	Output string
}

// Optimization renders baseline-vs-optimized throughput bars: delayed
// reclamation for writes, two-level caching for reads.
func Optimization(opts OptimizationOptions) error {
	records, err := loader.LoadJSON(opts.Input)
	if err != nil {
		return err
	}

	panels := []struct {
		op       string
		flag     string
		suffix   string
		optLabel string
	}{
		{"write", "delayed_reclamation", "write", "Delayed reclamation"},
		{"read", "two_level_caching", "read", "Two-level caching"},
	}

	for _, panel := range panels {
		// Records carry a boolean config flag rather than a variant
		// field; flatten to a variant category before aggregation.
		var variants []loader.Record
		for _, rec := range records {
			op, ok := rec.String("type")
			if !ok || op != panel.op {
				continue
			}
			value, ok := rec.Float("throughput_mib_s")
			if !ok {
				continue
			}
			variant := "baseline"
			if rec.Bool(panel.flag) {
				variant = "optimized"
			}
			variants = append(variants, loader.Record{
				"disk":             "sworndisk",
				"variant":          variant,
				"throughput_mib_s": value,
			})
		}

		table, err := aggregate.Build(variants, aggregate.Config{
			SeriesField:   "disk",
			CategoryField: "variant",
			ValueField:    "throughput_mib_s",
			SeriesMap:     map[string]string{"sworndisk": "StrataDisk"},
			CategoryOrder: []string{"baseline", "optimized"},
		})
		if err != nil {
			return err
		}

		out := suffixPath(opts.Output, panel.suffix)
		err = render.GroupedBars(table, render.Options{
			YLabel:  "Throughput (MiB/s)",
			XLabels: []string{"Baseline", panel.optLabel},
			YMax:    table.Max() * 1.15, // headroom over the taller bar
		}, out)
		if err != nil {
			return err
		}

		confirm(out)
	}

	return nil
}
