package config

import (
	"diskplot/internal/aggregate"
)

// ChartSpec is one chart request: what to read, how to normalize it, and
// how to draw it. Presets build the same structure in code; this type is
// for charts defined in YAML.
type ChartSpec struct {
	Chart ChartInfo `yaml:"chart"`
	Data  DataSpec  `yaml:"data"`
}

type ChartInfo struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"` // bars, lines or stacked
	YLabel string   `yaml:"ylabel"`
	XLabel string   `yaml:"xlabel,omitempty"`
	Footer string   `yaml:"footer,omitempty"`
	Output string   `yaml:"output"`
	Axis   AxisSpec `yaml:"axis"`
}

// AxisSpec controls the y axis upper bound. Max pins it; Step derives it
// from the data by rounding the table maximum up to the next multiple.
type AxisSpec struct {
	Max  float64 `yaml:"max,omitempty"`
	Step float64 `yaml:"step,omitempty"`
}

type DataSpec struct {
	Input          string            `yaml:"input"`
	Format         string            `yaml:"format"` // json or csv
	SeriesField    string            `yaml:"series_field"`
	CategoryField  string            `yaml:"category_field"`
	ValueField     string            `yaml:"value_field"`
	ValueScale     float64           `yaml:"value_scale,omitempty"`
	DefaultFill    float64           `yaml:"default_fill,omitempty"`
	MeanColumn     string            `yaml:"mean_column,omitempty"`
	CategorySplit  string            `yaml:"category_split,omitempty"`
	Series         map[string]string `yaml:"series"`
	SeriesOrder    []string          `yaml:"series_order,omitempty"`
	CategoryMap    map[string]string `yaml:"category_map,omitempty"`
	Categories     []string          `yaml:"categories"`
	CategoryLabels []string          `yaml:"category_labels,omitempty"`
}

// AggregateConfig translates the data section into an aggregator config.
func (s *ChartSpec) AggregateConfig() aggregate.Config {
	return aggregate.Config{
		SeriesField:   s.Data.SeriesField,
		CategoryField: s.Data.CategoryField,
		ValueField:    s.Data.ValueField,
		SeriesMap:     s.Data.Series,
		SeriesOrder:   s.Data.SeriesOrder,
		CategoryMap:   s.Data.CategoryMap,
		CategorySplit: s.Data.CategorySplit,
		CategoryOrder: s.Data.Categories,
		ValueScale:    s.Data.ValueScale,
		DefaultFill:   s.Data.DefaultFill,
		MeanColumn:    s.Data.MeanColumn,
	}
}

// Labels returns the display labels for the x axis, falling back to the
// category identifiers when none are configured. A configured mean column
// labels itself.
func (s *ChartSpec) Labels() []string {
	labels := s.Data.CategoryLabels
	if len(labels) == 0 {
		labels = append([]string(nil), s.Data.Categories...)
	}
	if s.Data.MeanColumn != "" && len(labels) == len(s.Data.Categories) {
		labels = append(labels, s.Data.MeanColumn)
	}
	return labels
}
