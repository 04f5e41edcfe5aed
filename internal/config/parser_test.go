package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validSpec = `
chart:
  name: Filebench throughput
  kind: bars
  ylabel: Throughput (MB/s)
  output: filebench.png
  axis:
    step: 50
data:
  input: results/filebench_results.json
  format: json
  series_field: disk_type
  category_field: workload
  value_field: throughput_mb_s
  series:
    sworndisk: StrataDisk
    cryptdisk: CryptDisk
  series_order: [CryptDisk, StrataDisk]
  categories: [fileserver, varmail, oltp, videoserver]
`

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing spec fixture: %v", err)
	}
	return path
}

func TestLoadSpec(t *testing.T) {
	spec, err := LoadSpec(writeSpec(t, validSpec))
	if err != nil {
		t.Fatalf("LoadSpec failed: %v", err)
	}
	if spec.Chart.Name != "Filebench throughput" {
		t.Fatalf("name = %q", spec.Chart.Name)
	}
	if spec.Chart.Axis.Step != 50 {
		t.Fatalf("axis step = %v, want 50", spec.Chart.Axis.Step)
	}
	if spec.Data.Series["sworndisk"] != "StrataDisk" {
		t.Fatalf("series map = %v", spec.Data.Series)
	}

	cfg := spec.AggregateConfig()
	if cfg.SeriesField != "disk_type" || cfg.CategoryField != "workload" {
		t.Fatalf("aggregate config fields = %q/%q", cfg.SeriesField, cfg.CategoryField)
	}
	if len(cfg.CategoryOrder) != 4 {
		t.Fatalf("category order = %v", cfg.CategoryOrder)
	}
}

func TestLoadSpecExpandsEnvVars(t *testing.T) {
	os.Setenv("RESULTS_DIR", "/data/run42")
	defer os.Unsetenv("RESULTS_DIR")

	content := strings.Replace(validSpec,
		"input: results/filebench_results.json",
		"input: ${RESULTS_DIR}/filebench_results.json", 1)

	spec, err := LoadSpec(writeSpec(t, content))
	if err != nil {
		t.Fatalf("LoadSpec failed: %v", err)
	}
	if spec.Data.Input != "/data/run42/filebench_results.json" {
		t.Fatalf("input = %q, env var not expanded", spec.Data.Input)
	}
}

func TestLoadSpecValidation(t *testing.T) {
	cases := []struct {
		name    string
		mangle  func(string) string
		wantErr string
	}{
		{
			name:    "missing kind",
			mangle:  func(s string) string { return strings.Replace(s, "  kind: bars\n", "", 1) },
			wantErr: "chart kind is required",
		},
		{
			name:    "unknown kind",
			mangle:  func(s string) string { return strings.Replace(s, "kind: bars", "kind: pie", 1) },
			wantErr: "unknown chart kind",
		},
		{
			name:    "missing series field",
			mangle:  func(s string) string { return strings.Replace(s, "  series_field: disk_type\n", "", 1) },
			wantErr: "series_field is required",
		},
		{
			name: "no categories",
			mangle: func(s string) string {
				return strings.Replace(s, "categories: [fileserver, varmail, oltp, videoserver]", "categories: []", 1)
			},
			wantErr: "at least one category",
		},
		{
			name: "series order outside map",
			mangle: func(s string) string {
				return strings.Replace(s, "series_order: [CryptDisk, StrataDisk]", "series_order: [PfsDisk]", 1)
			},
			wantErr: "series_order entry",
		},
		{
			name:    "bad format",
			mangle:  func(s string) string { return strings.Replace(s, "format: json", "format: xml", 1) },
			wantErr: "unknown input format",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadSpec(writeSpec(t, c.mangle(validSpec)))
			if err == nil {
				t.Fatalf("LoadSpec accepted an invalid spec")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("err = %v, want it to mention %q", err, c.wantErr)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	spec := &ChartSpec{Data: DataSpec{
		Categories: []string{"hm", "prn"},
		MeanColumn: "avg",
	}}
	labels := spec.Labels()
	if len(labels) != 3 || labels[2] != "avg" {
		t.Fatalf("labels = %v, want the mean column appended", labels)
	}

	spec.Data.CategoryLabels = []string{"Workload A", "Workload B"}
	labels = spec.Labels()
	if len(labels) != 3 || labels[0] != "Workload A" || labels[2] != "avg" {
		t.Fatalf("labels = %v", labels)
	}
}
