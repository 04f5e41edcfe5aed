package charts

import (
	"fmt"

	"diskplot/internal/aggregate"
	"diskplot/internal/config"
	"diskplot/internal/loader"
	"diskplot/internal/render"
)

// LoadSpecRecords reads the records a YAML chart spec points at.
func LoadSpecRecords(spec *config.ChartSpec) ([]loader.Record, error) {
	switch spec.Data.Format {
	case "csv":
		return loader.LoadCSV(spec.Data.Input)
	case "json", "":
		return loader.LoadJSON(spec.Data.Input)
	default:
		return nil, fmt.Errorf("unknown input format %q", spec.Data.Format)
	}
}

// RunSpec aggregates the given records under a YAML chart spec and renders
// the result. Records may come from files or from the database client; the
// spec does not care.
func RunSpec(spec *config.ChartSpec, records []loader.Record) error {
	table, err := aggregate.Build(records, spec.AggregateConfig())
	if err != nil {
		return err
	}

	yMax := spec.Chart.Axis.Max
	if yMax == 0 && spec.Chart.Axis.Step > 0 {
		yMax = aggregate.UpperBound(table.Max(), spec.Chart.Axis.Step)
	}

	opts := render.Options{
		Title:   spec.Chart.Name,
		XLabel:  spec.Chart.XLabel,
		YLabel:  spec.Chart.YLabel,
		XLabels: spec.Labels(),
		YMax:    yMax,
	}

	switch spec.Chart.Kind {
	case "bars":
		err = render.GroupedBars(table, opts, spec.Chart.Output)
	case "stacked":
		err = render.StackedBars(table, opts, spec.Chart.Output)
	case "lines":
		var series []render.Series
		series, err = tableLines(table)
		if err == nil {
			err = render.Lines(series, opts, spec.Chart.Output)
		}
	default:
		err = fmt.Errorf("unknown chart kind %q", spec.Chart.Kind)
	}
	if err != nil {
		return err
	}

	confirm(spec.Chart.Output)
	return nil
}
