package charts

import (
	"errors"

	"diskplot/internal/aggregate"
	"diskplot/internal/loader"
	"diskplot/internal/logging"
	"diskplot/internal/render"
)

// YCSBOptions names one result file per database engine. Missing files are
// tolerated: producers run the engines independently and a partial result
// set should still plot what exists.
type YCSBOptions struct {
	Bolt     string
	SQLite   string
	Postgres string
	Rocks    string
	Output   string
}

var ycsbWorkloads = []string{"workloada", "workloadb", "workloade", "workloadf"}
var ycsbLabels = []string{"YCSB-A", "YCSB-B", "YCSB-E", "YCSB-F"}

// ycsbStep picks the rounding step by magnitude so small-throughput engines
// keep a readable axis.
func ycsbStep(max float64) float64 {
	switch {
	case max < 10:
		return 2
	case max < 40:
		return 5
	default:
		return 10
	}
}

// YCSB renders one grouped-bar chart per database engine, throughput in
// kops across the YCSB workloads.
func YCSB(opts YCSBOptions) error {
	logger := logging.GetLogger()

	engines := []struct {
		name  string
		input string
	}{
		{"boltdb", opts.Bolt},
		{"sqlite", opts.SQLite},
		{"postgres", opts.Postgres},
		{"rocksdb", opts.Rocks},
	}

	rendered := 0
	for _, engine := range engines {
		records, err := loader.LoadJSON(engine.input)
		if err != nil {
			if errors.Is(err, loader.ErrSourceNotFound) {
				logger.WithField("path", engine.input).Warn("Result file not found, skipping engine")
				continue
			}
			return err
		}

		table, err := aggregate.Build(records, aggregate.Config{
			SeriesField:   "filesystem",
			CategoryField: "workload",
			ValueField:    "throughput_ops_sec",
			SeriesMap: map[string]string{
				"CryptDisk": "CryptDisk",
				"SwornDisk": "StrataDisk",
			},
			SeriesOrder:   []string{"CryptDisk", "StrataDisk"},
			CategoryOrder: ycsbWorkloads,
			ValueScale:    1.0 / 1000.0, // ops/s to kops
		})
		if err != nil {
			if errors.Is(err, aggregate.ErrEmptyResult) {
				logger.WithField("engine", engine.name).Warn("No plottable records, skipping engine")
				continue
			}
			return err
		}

		// Extra headroom keeps the in-plot legend clear of the bars.
		bound := aggregate.UpperBound(table.Max(), ycsbStep(table.Max())) * 1.15

		out := suffixPath(opts.Output, engine.name)
		err = render.GroupedBars(table, render.Options{
			YLabel:  "Throughput (kops)",
			XLabels: ycsbLabels,
			YMax:    bound,
		}, out)
		if err != nil {
			return err
		}

		confirm(out)
		rendered++
	}

	if rendered == 0 {
		return aggregate.ErrEmptyResult
	}
	return nil
}
