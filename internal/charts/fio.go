package charts

import (
	"diskplot/internal/aggregate"
	"diskplot/internal/loader"
	"diskplot/internal/render"
)

// FioOptions selects the input and output paths for the fio throughput
// comparison.
type FioOptions struct {
	Input  string
	Output string
}

// fio records carry one field per test instead of a category field, so the
// preset flattens them before aggregation.
var fioWriteTests = []string{"seq_write_256k", "rand_write_4k", "rand_write_32k", "rand_write_256k"}
var fioReadTests = []string{"seq_read_256k", "rand_read_4k", "rand_read_32k", "rand_read_256k"}
var fioTestLabels = []string{"Seq.", "Rnd. 4KB", "Rnd. 32KB", "Rnd. 256KB"}

var fioSeriesMap = map[string]string{
	"sworndisk": "StrataDisk",
	"cryptdisk": "CryptDisk",
}
var fioSeriesOrder = []string{"CryptDisk", "StrataDisk"}

// flattenFio synthesizes one record per (disk, test) pair from the wide
// per-disk records fio emits.
func flattenFio(records []loader.Record, tests []string) []loader.Record {
	var flat []loader.Record
	for _, rec := range records {
		disk, ok := rec.String("disk_type")
		if !ok {
			continue
		}
		for _, test := range tests {
			value, ok := rec.Float(test)
			if !ok {
				continue
			}
			flat = append(flat, loader.Record{
				"disk_type":       disk,
				"test":            test,
				"throughput_mb_s": value,
			})
		}
	}
	return flat
}

// Fio renders two grouped-bar charts, writes and reads, across the fio
// access patterns.
func Fio(opts FioOptions) error {
	records, err := loader.LoadJSON(opts.Input)
	if err != nil {
		return err
	}

	panels := []struct {
		suffix string
		tests  []string
	}{
		{"write", fioWriteTests},
		{"read", fioReadTests},
	}

	for _, panel := range panels {
		table, err := aggregate.Build(flattenFio(records, panel.tests), aggregate.Config{
			SeriesField:   "disk_type",
			CategoryField: "test",
			ValueField:    "throughput_mb_s",
			SeriesMap:     fioSeriesMap,
			SeriesOrder:   fioSeriesOrder,
			CategoryOrder: panel.tests,
		})
		if err != nil {
			return err
		}

		out := suffixPath(opts.Output, panel.suffix)
		err = render.GroupedBars(table, render.Options{
			YLabel:  "Throughput (MB/s)",
			XLabels: fioTestLabels,
			YMax:    aggregate.UpperBound(table.Max(), 200),
		}, out)
		if err != nil {
			return err
		}

		confirm(out)
	}

	return nil
}
