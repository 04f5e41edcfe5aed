package charts

import (
	"errors"
	"path/filepath"

	"diskplot/internal/aggregate"
	"diskplot/internal/loader"
	"diskplot/internal/logging"
	"diskplot/internal/render"
)

// CostBreakdownOptions points at the directory holding the per-test
// benchmark logs.
type CostBreakdownOptions struct {
	Input  string
	Output string
}

// costStatsMarker frames the JSON block the cost-stats reporter appends to
// each benchmark log.
const costStatsMarker = "COST_STATS_JSON"

var costTests = []struct {
	name  string
	label string
}{
	{"seq-write", "Seq. Write"},
	{"rand-write", "Rnd. Write"},
	{"seq-read", "Seq. Read"},
	{"rand-read", "Rnd. Read"},
}

// Stack order is bottom-up.
var costLayers = []struct {
	layer      string
	suffix     string
	components []string
	labels     map[string]string
}{
	{
		layer:      "L3",
		suffix:     "l3",
		components: []string{"allocation", "encryption", "block_io", "logical_block_table"},
		labels: map[string]string{
			"allocation":          "User block allocation",
			"encryption":          "User block enc/dec",
			"block_io":            "User block I/O",
			"logical_block_table": "Logical Block Table",
		},
	},
	{
		layer:      "L2",
		suffix:     "l2",
		components: []string{"wal", "memtable", "compaction", "sstable_lookup"},
		labels: map[string]string{
			"wal":            "WAL",
			"memtable":       "MemTable",
			"compaction":     "Compaction",
			"sstable_lookup": "SSTable lookup",
		},
	},
}

// CostBreakdown renders stacked percentage bars of where each I/O pattern
// spends its time, one chart per disk layer.
func CostBreakdown(opts CostBreakdownOptions) error {
	logger := logging.GetLogger()

	// Flatten the embedded JSON blocks into records: one per
	// (test, layer, component) with its percentage share.
	var records []loader.Record
	for _, test := range costTests {
		path := filepath.Join(opts.Input, test.name+".log")
		stats, err := loader.ExtractEmbeddedJSON(path, costStatsMarker)
		if err != nil {
			if errors.Is(err, loader.ErrSourceNotFound) || errors.Is(err, loader.ErrMalformedInput) {
				logger.WithField("path", path).WithError(err).Warn("No cost stats for test, skipping")
				continue
			}
			return err
		}

		for _, layer := range costLayers {
			shares, ok := stats[layer.layer].(map[string]any)
			if !ok {
				continue
			}
			for component, value := range shares {
				records = append(records, loader.Record{
					"layer":     layer.layer,
					"test":      test.label,
					"component": component,
					"percent":   value,
				})
			}
		}
	}

	categories := make([]string, len(costTests))
	for i, test := range costTests {
		categories[i] = test.label
	}

	for _, layer := range costLayers {
		var subset []loader.Record
		for _, rec := range records {
			if l, ok := rec.String("layer"); ok && l == layer.layer {
				subset = append(subset, rec)
			}
		}

		seriesMap := make(map[string]string, len(layer.components))
		seriesOrder := make([]string, len(layer.components))
		for i, component := range layer.components {
			seriesMap[component] = layer.labels[component]
			seriesOrder[i] = layer.labels[component]
		}

		table, err := aggregate.Build(subset, aggregate.Config{
			SeriesField:   "component",
			CategoryField: "test",
			ValueField:    "percent",
			SeriesMap:     seriesMap,
			SeriesOrder:   seriesOrder,
			CategoryOrder: categories,
		})
		if err != nil {
			return err
		}

		out := suffixPath(opts.Output, layer.suffix)
		err = render.StackedBars(table, render.Options{
			YLabel: "Share of cost (%)",
			YMax:   100,
		}, out)
		if err != nil {
			return err
		}

		confirm(out)
	}

	return nil
}
