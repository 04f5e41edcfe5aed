package charts

import (
	"diskplot/internal/aggregate"
	"diskplot/internal/loader"
	"diskplot/internal/render"
)

// FilebenchOptions selects the input and output paths for the filebench
// throughput comparison.
type FilebenchOptions struct {
	Input  string
	Output string
}

// Filebench renders grouped throughput bars for the filebench workloads,
// one bar group per workload, one bar per disk implementation.
func Filebench(opts FilebenchOptions) error {
	records, err := loader.LoadJSON(opts.Input)
	if err != nil {
		return err
	}

	table, err := aggregate.Build(records, aggregate.Config{
		SeriesField:   "disk_type",
		CategoryField: "workload",
		ValueField:    "throughput_mb_s",
		SeriesMap: map[string]string{
			"cryptdisk": "CryptDisk",
			"pfsdisk":   "PfsDisk",
			"sworndisk": "StrataDisk",
		},
		SeriesOrder:   []string{"CryptDisk", "PfsDisk", "StrataDisk"},
		CategoryOrder: []string{"fileserver", "varmail", "oltp", "videoserver"},
	})
	if err != nil {
		return err
	}

	err = render.GroupedBars(table, render.Options{
		YLabel: "Throughput (MB/s)",
		YMax:   aggregate.UpperBound(table.Max(), 50),
	}, opts.Output)
	if err != nil {
		return err
	}

	confirm(opts.Output)
	return nil
}
