package utils

import "time"

// FormatRFC3339 formats a time as RFC3339, the stored timestamp shape
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseRFC3339 parses an RFC3339 timestamp, returning the zero time on failure
func ParseRFC3339(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
