package loader

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"diskplot/internal/logging"
)

var (
	// ErrSourceNotFound indicates a required input path does not exist.
	ErrSourceNotFound = errors.New("result source not found")
	// ErrMalformedInput indicates a source could not be parsed into records
	// at all. Individual bad lines inside an otherwise valid source are
	// skipped, not reported.
	ErrMalformedInput = errors.New("malformed result input")
)

// LoadJSON reads a JSON result file into records. The file is either a
// top-level array of objects or an object wrapping the array under a
// "results" key; both shapes occur in the wild.
func LoadJSON(path string) ([]Record, error) {
	logger := logging.GetLogger()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, err
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		var wrapper struct {
			Results []map[string]any `json:"results"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil || wrapper.Results == nil {
			return nil, fmt.Errorf("%w: %s: expected a JSON array of records", ErrMalformedInput, path)
		}
		rows = wrapper.Results
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, Record(row))
	}

	logger.WithFields(map[string]any{
		"path":    path,
		"records": len(records),
	}).Debug("Loaded JSON results")

	return records, nil
}

// LoadCSV reads a CSV result file into records. The first row names the
// fields; numeric cells are parsed to float64, everything else stays a
// string. Short or otherwise broken rows are skipped.
func LoadCSV(path string) ([]Record, error) {
	logger := logging.GetLogger()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInput, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: no header row", ErrMalformedInput, path)
	}

	header := rows[0]
	var records []Record
	for _, row := range rows[1:] {
		if len(row) < len(header) {
			continue
		}
		rec := make(Record, len(header))
		for i, field := range header {
			cell := strings.TrimSpace(row[i])
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				rec[strings.TrimSpace(field)] = v
			} else {
				rec[strings.TrimSpace(field)] = cell
			}
		}
		records = append(records, rec)
	}

	logger.WithFields(map[string]any{
		"path":    path,
		"records": len(records),
	}).Debug("Loaded CSV results")

	return records, nil
}

// LoadSeries reads a file with one numeric value per line, as produced by
// the cleaning benchmark. Blank lines and non-numeric lines (headers the
// producers sometimes prepend) are skipped silently.
func LoadSeries(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	var values []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInput, path, err)
	}

	return values, nil
}

// ExtractEmbeddedJSON pulls a JSON object out of a benchmark log file. The
// object is delimited by "========== <marker> ==========" above and a run of
// '=' below, the framing the cost-stats reporter emits.
func ExtractEmbeddedJSON(path, marker string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, err
	}

	pattern := regexp.MustCompile(`={10} ` + regexp.QuoteMeta(marker) + ` ={10}\s*(\{[\s\S]*?\})\s*={10,}`)
	match := pattern.FindSubmatch(data)
	if match == nil {
		return nil, fmt.Errorf("%w: %s: no %s block", ErrMalformedInput, path, marker)
	}

	var obj map[string]any
	if err := json.Unmarshal(match[1], &obj); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInput, path, err)
	}
	return obj, nil
}
