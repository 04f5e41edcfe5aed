package render

import (
	"os"
	"path/filepath"
	"testing"

	"diskplot/internal/aggregate"

	"gonum.org/v1/plot/plotter"
)

func testTable() *aggregate.Table {
	return &aggregate.Table{
		Series:     []string{"CryptDisk", "StrataDisk"},
		Categories: []string{"fileserver", "varmail"},
		Values: map[string]map[string]float64{
			"CryptDisk":  {"fileserver": 90.5, "varmail": 0},
			"StrataDisk": {"fileserver": 150.2, "varmail": 0},
		},
	}
}

func requireImage(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected image %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("image %s is empty", path)
	}
}

func TestGroupedBarsCreatesOutputDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "bars.png")
	err := GroupedBars(testTable(), Options{YLabel: "Throughput (MB/s)", YMax: 200}, path)
	if err != nil {
		t.Fatalf("GroupedBars failed: %v", err)
	}
	requireImage(t, path)
}

func TestStackedBars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stacked.png")
	err := StackedBars(testTable(), Options{YLabel: "Share (%)", YMax: 100}, path)
	if err != nil {
		t.Fatalf("StackedBars failed: %v", err)
	}
	requireImage(t, path)
}

func TestLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.png")
	series := []Series{
		{Name: "StrataDisk", Points: plotter.XYs{{X: 1, Y: 410}, {X: 2, Y: 395}}},
		{Name: "CryptDisk", Points: plotter.XYs{{X: 1, Y: 450}, {X: 2, Y: 448}}},
	}
	err := Lines(series, Options{XLabel: "Runs", YLabel: "Throughput (MB/s)", YMin: 100, YMax: 500}, path)
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}
	requireImage(t, path)
}
