package aggregate

import (
	"errors"
	"math"
	"sort"
	"strings"

	"diskplot/internal/loader"
	"diskplot/internal/logging"

	"github.com/sirupsen/logrus"
)

// ErrEmptyResult indicates parsing succeeded but no record survived
// normalization and filtering. Callers usually warn and exit non-zero
// rather than treat this as a crash: it almost always means the wrong
// input file, not a bug.
var ErrEmptyResult = errors.New("no records survived normalization")

// Config parameterizes one aggregation. The per-chart presets instantiate
// this instead of each carrying their own copy of the bucketing code.
type Config struct {
	// SeriesField names the record field holding the raw series
	// identifier (e.g. disk_type).
	SeriesField string
	// CategoryField names the record field holding the category
	// identifier (workload, trace, cache bucket).
	CategoryField string
	// ValueField names the measurement to extract.
	ValueField string

	// SeriesMap maps raw producer identifiers onto canonical display
	// identifiers. Records whose raw identifier is outside the map are
	// dropped, not errored: the map is the mechanism for scoping a chart
	// to the producers it compares.
	SeriesMap map[string]string
	// SeriesOrder fixes the output series order. When empty, the
	// deduplicated range of SeriesMap is used, sorted.
	SeriesOrder []string

	// CategoryMap optionally aliases raw category identifiers before the
	// ordering check (e.g. fio test keys to display labels).
	CategoryMap map[string]string
	// CategorySplit, when non-empty, truncates the raw category at the
	// first occurrence of the separator. Trace names arrive suffixed like
	// "wdev_0"; only the base name is plotted.
	CategorySplit string
	// CategoryOrder is the explicit, finite column order of the table.
	// Categories outside it are dropped, which keeps chart layout stable
	// regardless of input record order.
	CategoryOrder []string

	// ValueScale converts units on the way in (ops/s to kops is 0.001).
	// Zero means 1.0.
	ValueScale float64
	// DefaultFill is the value for (series, category) pairs with no
	// contributing record. Zero value is the conventional 0.0.
	DefaultFill float64
	// MeanColumn, when non-empty, appends a synthetic trailing category
	// holding the arithmetic mean of each series over the base categories.
	MeanColumn string
}

// Table is the dense aggregation result: every (series, category) pair in
// Series x Categories has a value. Renderers never need null handling.
type Table struct {
	Series     []string
	Categories []string
	Values     map[string]map[string]float64
}

// Build turns a record sequence into a dense table. Later records overwrite
// earlier ones for the same cell: producers re-emit entries on retries and
// the last one is authoritative.
func Build(records []loader.Record, cfg Config) (*Table, error) {
	logger := logging.GetLogger()

	series := cfg.SeriesOrder
	if len(series) == 0 {
		series = mapRange(cfg.SeriesMap)
	}
	if len(series) == 0 || len(cfg.CategoryOrder) == 0 {
		return nil, ErrEmptyResult
	}

	scale := cfg.ValueScale
	if scale == 0 {
		scale = 1.0
	}

	known := make(map[string]bool, len(series))
	for _, s := range series {
		known[s] = true
	}
	inOrder := make(map[string]bool, len(cfg.CategoryOrder))
	for _, c := range cfg.CategoryOrder {
		inOrder[c] = true
	}

	values := make(map[string]map[string]float64, len(series))
	for _, s := range series {
		row := make(map[string]float64, len(cfg.CategoryOrder))
		for _, c := range cfg.CategoryOrder {
			row[c] = cfg.DefaultFill
		}
		values[s] = row
	}

	contributed := 0
	droppedSeries, droppedCategory, droppedValue := 0, 0, 0

	for _, rec := range records {
		raw, ok := rec.String(cfg.SeriesField)
		if !ok {
			droppedSeries++
			continue
		}
		canonical, ok := cfg.SeriesMap[raw]
		if !ok || !known[canonical] {
			droppedSeries++
			continue
		}

		category, ok := rec.String(cfg.CategoryField)
		if !ok {
			droppedCategory++
			continue
		}
		if cfg.CategorySplit != "" {
			category, _, _ = strings.Cut(category, cfg.CategorySplit)
		}
		if alias, ok := cfg.CategoryMap[category]; ok {
			category = alias
		}
		if !inOrder[category] {
			droppedCategory++
			continue
		}

		value, ok := rec.Float(cfg.ValueField)
		if !ok {
			droppedValue++
			continue
		}

		values[canonical][category] = value * scale
		contributed++
	}

	if contributed == 0 {
		logger.WithFields(logrus.Fields{
			"records":          len(records),
			"dropped_series":   droppedSeries,
			"dropped_category": droppedCategory,
			"dropped_value":    droppedValue,
		}).Warn("No records survived normalization")
		return nil, ErrEmptyResult
	}

	logger.WithFields(logrus.Fields{
		"records":          len(records),
		"contributed":      contributed,
		"dropped_series":   droppedSeries,
		"dropped_category": droppedCategory,
		"dropped_value":    droppedValue,
	}).Debug("Aggregated records")

	table := &Table{
		Series:     series,
		Categories: append([]string(nil), cfg.CategoryOrder...),
		Values:     values,
	}

	if cfg.MeanColumn != "" {
		for _, s := range series {
			sum := 0.0
			for _, c := range cfg.CategoryOrder {
				sum += values[s][c]
			}
			values[s][cfg.MeanColumn] = sum / float64(len(cfg.CategoryOrder))
		}
		table.Categories = append(table.Categories, cfg.MeanColumn)
	}

	return table, nil
}

// Row returns a series' values in category order.
func (t *Table) Row(series string) []float64 {
	row := make([]float64, len(t.Categories))
	for i, c := range t.Categories {
		row[i] = t.Values[series][c]
	}
	return row
}

// Max returns the largest cell value across all series and categories.
func (t *Table) Max() float64 {
	max := math.Inf(-1)
	for _, s := range t.Series {
		for _, c := range t.Categories {
			if v := t.Values[s][c]; v > max {
				max = v
			}
		}
	}
	return max
}

// UpperBound rounds max up to the next multiple of step, guaranteeing
// headroom above the tallest bar. Exact multiples are left unchanged. All
// subplots sharing an axis must use the same step to stay comparable.
func UpperBound(max, step float64) float64 {
	if step <= 0 {
		return max
	}
	if max <= 0 {
		return step
	}
	return math.Ceil(max/step) * step
}

func mapRange(m map[string]string) []string {
	seen := make(map[string]bool, len(m))
	var out []string
	for _, v := range m {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
