package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"diskplot/internal/logging"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads and validates a YAML chart spec. ${VAR} references are
// expanded from the environment before parsing so result paths can point
// at per-host locations.
func LoadSpec(filepath string) (*ChartSpec, error) {
	logger := logging.GetLogger()

	data, err := os.ReadFile(filepath)
	if err != nil {
		logger.WithField("filepath", filepath).WithError(err).Error("Failed to read chart spec")
		return nil, err
	}

	expanded := expandEnvVars(string(data))

	var spec ChartSpec
	if err := yaml.Unmarshal([]byte(expanded), &spec); err != nil {
		logger.WithField("filepath", filepath).WithError(err).Error("Failed to parse chart spec")
		return nil, err
	}

	if err := validateSpec(&spec); err != nil {
		return nil, fmt.Errorf("invalid chart spec: %w", err)
	}

	return &spec, nil
}

func expandEnvVars(content string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(content, func(match string) string {
		envVar := strings.Trim(match, "${}")
		if value := os.Getenv(envVar); value != "" {
			return value
		}
		return match
	})
}

func validateSpec(spec *ChartSpec) error {
	if spec.Chart.Name == "" {
		return fmt.Errorf("chart name is required")
	}

	switch spec.Chart.Kind {
	case "bars", "lines", "stacked":
	case "":
		return fmt.Errorf("chart kind is required")
	default:
		return fmt.Errorf("unknown chart kind %q", spec.Chart.Kind)
	}

	if spec.Data.SeriesField == "" {
		return fmt.Errorf("series_field is required")
	}
	if spec.Data.CategoryField == "" {
		return fmt.Errorf("category_field is required")
	}
	if spec.Data.ValueField == "" {
		return fmt.Errorf("value_field is required")
	}
	if len(spec.Data.Series) == 0 {
		return fmt.Errorf("at least one series mapping must be defined")
	}
	if len(spec.Data.Categories) == 0 {
		return fmt.Errorf("at least one category must be defined")
	}
	if len(spec.Data.CategoryLabels) > 0 && len(spec.Data.CategoryLabels) != len(spec.Data.Categories) {
		return fmt.Errorf("category_labels must match categories (%d != %d)",
			len(spec.Data.CategoryLabels), len(spec.Data.Categories))
	}

	switch spec.Data.Format {
	case "json", "csv", "":
	default:
		return fmt.Errorf("unknown input format %q", spec.Data.Format)
	}

	for _, canonical := range spec.Data.SeriesOrder {
		found := false
		for _, mapped := range spec.Data.Series {
			if mapped == canonical {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("series_order entry %q is not in the range of the series map", canonical)
		}
	}

	return nil
}
