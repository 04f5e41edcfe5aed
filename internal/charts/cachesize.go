package charts

import (
	"strconv"

	"diskplot/internal/aggregate"
	"diskplot/internal/loader"
	"diskplot/internal/render"
)

// CacheSizeOptions selects the input and output paths for the cache-size
// sweep.
type CacheSizeOptions struct {
	Input  string
	Output string
}

// Cache sizes swept by the benchmark, in GB.
var cacheSizes = []string{"0.25", "0.5", "0.75", "1", "1.25", "1.5"}

// CacheSize renders throughput-vs-cache-size lines, one chart for 4KB
// random writes and one for reads.
func CacheSize(opts CacheSizeOptions) error {
	records, err := loader.LoadJSON(opts.Input)
	if err != nil {
		return err
	}

	// Records report cache_size_mb; categories are the size in GB. The
	// single-disk sweep omits disk_type, implying sworndisk.
	prepared := make([]loader.Record, 0, len(records))
	for _, rec := range records {
		mb, ok := rec.Float("cache_size_mb")
		if !ok {
			continue
		}
		withGB := make(loader.Record, len(rec)+2)
		for k, v := range rec {
			withGB[k] = v
		}
		withGB["cache_gb"] = strconv.FormatFloat(mb/1024.0, 'f', -1, 64)
		if _, ok := rec.String("disk_type"); !ok {
			withGB["disk_type"] = "sworndisk"
		}
		prepared = append(prepared, withGB)
	}

	panels := []struct {
		op     string
		suffix string
		yMax   float64
	}{
		{"write", "write", 450},
		{"read", "read", 200},
	}

	for _, panel := range panels {
		var subset []loader.Record
		for _, rec := range prepared {
			if op, ok := rec.String("op"); ok && op == panel.op {
				subset = append(subset, rec)
			}
		}

		table, err := aggregate.Build(subset, aggregate.Config{
			SeriesField:   "disk_type",
			CategoryField: "cache_gb",
			ValueField:    "throughput_mib_s",
			SeriesMap: map[string]string{
				"cryptdisk": "CryptDisk",
				"pfsdisk":   "PfsDisk",
				"sworndisk": "StrataDisk",
			},
			SeriesOrder:   []string{"CryptDisk", "PfsDisk", "StrataDisk"},
			CategoryOrder: cacheSizes,
		})
		if err != nil {
			return err
		}

		series, err := tableLines(table)
		if err != nil {
			return err
		}

		out := suffixPath(opts.Output, panel.suffix)
		err = render.Lines(series, render.Options{
			XLabel: "Cache size (GB)",
			YLabel: "Throughput (MB/s)",
			YMax:   panel.yMax,
		}, out)
		if err != nil {
			return err
		}

		confirm(out)
	}

	return nil
}
