package charts

import (
	"diskplot/internal/aggregate"
	"diskplot/internal/loader"
	"diskplot/internal/render"
)

// DiskUtilityOptions selects the input and output paths for the disk
// utilization sweep.
type DiskUtilityOptions struct {
	Input  string
	Output string
}

// Fill percentages swept by the benchmark.
var fillPercents = []string{"10", "30", "50", "70", "90"}

var diskUtilitySeriesMap = map[string]string{
	"sworndisk": "StrataDisk",
	"cryptdisk": "CryptDisk",
}
var diskUtilitySeriesOrder = []string{"CryptDisk", "StrataDisk"}

// cryptDiskWAF is the fixed overwrite-in-place amplification reported for
// CryptDisk; its producer does not measure WAF.
const cryptDiskWAF = 1.004

// DiskUtility renders two line charts over disk fill percentage: write
// amplification factor and throughput.
func DiskUtility(opts DiskUtilityOptions) error {
	records, err := loader.LoadCSV(opts.Input)
	if err != nil {
		return err
	}

	wafTable, err := aggregate.Build(records, aggregate.Config{
		SeriesField:   "disk_type",
		CategoryField: "fill_percent",
		ValueField:    "waf",
		SeriesMap:     diskUtilitySeriesMap,
		SeriesOrder:   diskUtilitySeriesOrder,
		CategoryOrder: fillPercents,
		DefaultFill:   cryptDiskWAF,
	})
	if err != nil {
		return err
	}
	for _, c := range wafTable.Categories {
		wafTable.Values["CryptDisk"][c] = cryptDiskWAF
	}

	wafSeries, err := tableLines(wafTable)
	if err != nil {
		return err
	}

	wafOut := suffixPath(opts.Output, "waf")
	err = render.Lines(wafSeries, render.Options{
		XLabel: "Disk utility (%)",
		YLabel: "Write Amp. Factor",
		YMin:   0.90,
		YMax:   1.15,
	}, wafOut)
	if err != nil {
		return err
	}
	confirm(wafOut)

	thrTable, err := aggregate.Build(records, aggregate.Config{
		SeriesField:   "disk_type",
		CategoryField: "fill_percent",
		ValueField:    "throughput_mib_s",
		SeriesMap:     diskUtilitySeriesMap,
		SeriesOrder:   diskUtilitySeriesOrder,
		CategoryOrder: fillPercents,
	})
	if err != nil {
		return err
	}

	thrSeries, err := tableLines(thrTable)
	if err != nil {
		return err
	}

	thrOut := suffixPath(opts.Output, "throughput")
	err = render.Lines(thrSeries, render.Options{
		XLabel: "Disk utility (%)",
		YLabel: "Throughput (MB/s)",
		YMax:   500,
	}, thrOut)
	if err != nil {
		return err
	}
	confirm(thrOut)

	return nil
}
