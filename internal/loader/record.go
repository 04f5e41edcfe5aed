package loader

import (
	"strconv"
)

// Record is one flat measurement row: field name to scalar value. Records
// come out of the loaders (or the database client) and are never mutated
// after that.
type Record map[string]any

// String returns the field rendered as an identifier. Numeric values are
// formatted without a trailing ".0" so CSV columns like fill_percent can be
// used as category keys.
func (r Record) String(field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}

// Float returns the field as a float64. String values are parsed so that
// producers which quote their numbers still aggregate.
func (r Record) Float(field string) (float64, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Bool returns the field as a bool, treating absence as false.
func (r Record) Bool(field string) bool {
	v, ok := r[field]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}
