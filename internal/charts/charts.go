// Package charts holds one preset per evaluation figure. Each preset is a
// parameterized instantiation of the shared aggregator plus a renderer
// call; the identifier maps and category orders that used to be duplicated
// per script live here, once.
package charts

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"diskplot/internal/aggregate"
	"diskplot/internal/render"

	"gonum.org/v1/plot/plotter"
)

// confirm prints the success message the invocations end with.
func confirm(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fmt.Printf("Chart saved to %s\n", abs)
}

// suffixPath turns "out/result.png" + "write" into "out/result-write.png".
// Multi-panel figures from the reference become one image per panel.
func suffixPath(path, suffix string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	if ext == "" {
		ext = ".png"
	}
	return base + "-" + suffix + ext
}

// tableLines converts a dense table into line-chart series, parsing the
// category identifiers as x coordinates. Categories must be numeric for
// charts of this kind (cache sizes, fill percentages).
func tableLines(table *aggregate.Table) ([]render.Series, error) {
	xs := make([]float64, len(table.Categories))
	for i, c := range table.Categories {
		x, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, fmt.Errorf("category %q is not numeric: %w", c, err)
		}
		xs[i] = x
	}

	series := make([]render.Series, 0, len(table.Series))
	for _, s := range table.Series {
		pts := make(plotter.XYs, len(xs))
		row := table.Row(s)
		for i := range xs {
			pts[i].X = xs[i]
			pts[i].Y = row[i]
		}
		series = append(series, render.Series{Name: s, Points: pts})
	}
	return series, nil
}
