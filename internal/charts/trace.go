package charts

import (
	"diskplot/internal/aggregate"
	"diskplot/internal/loader"
	"diskplot/internal/render"
)

// TraceOptions selects the input and output paths for the trace-replay
// bandwidth comparison.
type TraceOptions struct {
	Input  string
	Output string
}

// Default replay order of the MSR block traces. Raw trace names arrive
// suffixed with a run index ("wdev_0"); only the base name is a category.
var traceOrder = []string{"hm", "prn", "proj", "rsrch", "src", "stg", "usr", "wdev"}

// Trace renders grouped bandwidth bars per replayed trace, with a trailing
// "avg" column holding each disk's mean over the traces.
func Trace(opts TraceOptions) error {
	records, err := loader.LoadJSON(opts.Input)
	if err != nil {
		return err
	}

	table, err := aggregate.Build(records, aggregate.Config{
		SeriesField:   "disk_type",
		CategoryField: "trace",
		ValueField:    "bandwidth_mb_s",
		// The PfsDisk producer emits its display name as the raw
		// identifier, and identifiers already in canonical form pass
		// through unchanged.
		SeriesMap: map[string]string{
			"cryptdisk":  "CryptDisk",
			"CryptDisk":  "CryptDisk",
			"pfsdisk":    "PfsDisk",
			"PfsDisk":    "PfsDisk",
			"sworndisk":  "StrataDisk",
			"StrataDisk": "StrataDisk",
		},
		SeriesOrder:   []string{"CryptDisk", "PfsDisk", "StrataDisk"},
		CategorySplit: "_",
		CategoryOrder: traceOrder,
		MeanColumn:    "avg",
	})
	if err != nil {
		return err
	}

	err = render.GroupedBars(table, render.Options{
		YLabel: "Throughput (MB/s)",
		YMax:   aggregate.UpperBound(table.Max(), 200),
	}, opts.Output)
	if err != nil {
		return err
	}

	confirm(opts.Output)
	return nil
}
