// Package forms is the single place where string-typed form input becomes
// typed values. Every submit crosses this boundary exactly once; handlers
// and services never call strconv on raw fields themselves.
package forms

import (
	"strconv"
	"strings"
	"time"
)

// Violations maps field name to a short message. Empty means the form
// passed.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

func (v Violations) Add(field, msg string) {
	if _, exists := v[field]; !exists {
		v[field] = msg
	}
}

// Required flags a blank string field.
func Required(field, value string, v Violations) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		v.Add(field, "required")
	}
	return trimmed
}

// ParseFloat coerces a numeric form field. A blank value parses as zero;
// garbage is a violation.
func ParseFloat(field, value string, v Violations) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		v.Add(field, "must be a number")
		return 0
	}
	return f
}

// ParseNonNegative is ParseFloat plus a floor-at-zero rule.
func ParseNonNegative(field, value string, v Violations) float64 {
	f := ParseFloat(field, value, v)
	if f < 0 {
		v.Add(field, "must not be negative")
		return 0
	}
	return f
}

// ParsePositive is ParseFloat requiring a value strictly above zero.
func ParsePositive(field, value string, v Violations) float64 {
	f := ParseFloat(field, value, v)
	if f <= 0 {
		v.Add(field, "must be greater than zero")
		return 0
	}
	return f
}

// ParseDate accepts yyyy-mm-dd or full RFC 3339 and returns the parsed
// time. The wire always carries ISO-8601; FormatDate is the inverse.
func ParseDate(field, value string, v Violations) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		v.Add(field, "required")
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	v.Add(field, "must be an ISO-8601 date")
	return time.Time{}
}

// FormatDate renders a time for the wire as yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
