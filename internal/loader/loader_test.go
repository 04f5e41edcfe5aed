package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadJSONArray(t *testing.T) {
	path := writeFile(t, "results.json", `[
		{"disk_type": "sworndisk", "workload": "fileserver", "throughput_mb_s": 150.2},
		{"disk_type": "cryptdisk", "workload": "fileserver", "throughput_mb_s": 90.5}
	]`)

	records, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if d, ok := records[0].String("disk_type"); !ok || d != "sworndisk" {
		t.Fatalf("disk_type = %q (present=%v)", d, ok)
	}
	if v, ok := records[0].Float("throughput_mb_s"); !ok || v != 150.2 {
		t.Fatalf("throughput_mb_s = %v (present=%v)", v, ok)
	}
}

func TestLoadJSONResultsWrapper(t *testing.T) {
	path := writeFile(t, "results.json", `{"results": [{"filesystem": "SwornDisk", "workload": "a", "ops_per_sec": 12000}]}`)

	records, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if v, ok := records[0].Float("ops_per_sec"); !ok || v != 12000 {
		t.Fatalf("ops_per_sec = %v (present=%v)", v, ok)
	}
}

func TestLoadJSONNotFound(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("err = %v, want ErrSourceNotFound", err)
	}
}

func TestLoadJSONMalformed(t *testing.T) {
	path := writeFile(t, "bad.json", `{"not": "an array"}`)
	_, err := LoadJSON(path)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("err = %v, want ErrMalformedInput", err)
	}
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "results.csv", "disk_type,fill_percent,waf\nsworndisk,10,1.02\nsworndisk,30,1.05\nshortrow\n")

	records, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (short row skipped)", len(records))
	}
	if d, ok := records[0].String("disk_type"); !ok || d != "sworndisk" {
		t.Fatalf("disk_type = %q (present=%v)", d, ok)
	}
	// Numeric cells come back as floats but are still addressable as strings.
	if p, ok := records[0].String("fill_percent"); !ok || p != "10" {
		t.Fatalf("fill_percent = %q (present=%v)", p, ok)
	}
	if v, ok := records[1].Float("waf"); !ok || v != 1.05 {
		t.Fatalf("waf = %v (present=%v)", v, ok)
	}
}

func TestLoadCSVNotFound(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("err = %v, want ErrSourceNotFound", err)
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	_, err := LoadCSV(path)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("err = %v, want ErrMalformedInput", err)
	}
}

func TestLoadSeries(t *testing.T) {
	path := writeFile(t, "throughput.csv", "throughput\n410.5\n\n395.2\nnot-a-number\n402.0\n")

	values, err := LoadSeries(path)
	if err != nil {
		t.Fatalf("LoadSeries failed: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("got %d values, want 3", len(values))
	}
	if values[0] != 410.5 || values[2] != 402.0 {
		t.Fatalf("unexpected values: %v", values)
	}
}

func TestExtractEmbeddedJSON(t *testing.T) {
	path := writeFile(t, "seq-write.log", `starting benchmark
some output
========== COST_STATS_JSON ==========
{"L3": {"encryption": 40.5, "block_io": 59.5}, "L2": {"wal": 100.0}}
=====================================
done
`)

	stats, err := ExtractEmbeddedJSON(path, "COST_STATS_JSON")
	if err != nil {
		t.Fatalf("ExtractEmbeddedJSON failed: %v", err)
	}
	l3, ok := stats["L3"].(map[string]any)
	if !ok {
		t.Fatalf("L3 block missing: %v", stats)
	}
	if l3["encryption"] != 40.5 {
		t.Fatalf("encryption = %v, want 40.5", l3["encryption"])
	}
}

func TestExtractEmbeddedJSONNoBlock(t *testing.T) {
	path := writeFile(t, "plain.log", "just log lines\nnothing framed\n")
	_, err := ExtractEmbeddedJSON(path, "COST_STATS_JSON")
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("err = %v, want ErrMalformedInput", err)
	}
}

func TestRecordAccessors(t *testing.T) {
	rec := Record{
		"name":    "sworndisk",
		"count":   float64(42),
		"flag":    true,
		"numeric": "3.5",
	}

	if s, ok := rec.String("name"); !ok || s != "sworndisk" {
		t.Fatalf("String(name) = %q (present=%v)", s, ok)
	}
	if s, ok := rec.String("count"); !ok || s != "42" {
		t.Fatalf("String(count) = %q (present=%v)", s, ok)
	}
	if v, ok := rec.Float("numeric"); !ok || v != 3.5 {
		t.Fatalf("Float(numeric) = %v (present=%v)", v, ok)
	}
	if !rec.Bool("flag") {
		t.Fatalf("Bool(flag) = false, want true")
	}
	if rec.Bool("missing") {
		t.Fatalf("Bool(missing) = true, want false")
	}
	if _, ok := rec.Float("name"); ok {
		t.Fatalf("Float(name) succeeded on a non-numeric string")
	}
}
