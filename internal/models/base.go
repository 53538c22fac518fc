package models

import (
	"strconv"
	"time"
)

// Timestamps are stored in the CSV files as ISO-8601 (RFC 3339) strings.

// FormatTime renders a timestamp for a CSV cell. The zero time renders
// as an empty cell so round trips stay stable.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ParseTime parses a CSV timestamp cell. Missing or unparseable cells
// coerce to the current time, matching the loader's best-effort policy.
func ParseTime(s string) time.Time {
	if s == "" {
		return time.Now().UTC()
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Now().UTC()
	}
	return t.UTC()
}

// parseFloat coerces a numeric cell, returning 0 for anything unparseable.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// parseInt coerces an integer cell, returning 0 for anything unparseable.
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		// Tolerate values that were written as floats (e.g. "3.0").
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int(f)
		}
		return 0
	}
	return n
}

// parseBool coerces a boolean cell. Only the literal string "true" is true.
func parseBool(s string) bool {
	return s == "true"
}

// formatBool renders a boolean cell as "true"/"false".
func formatBool(b bool) string {
	return strconv.FormatBool(b)
}
