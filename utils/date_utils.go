package utils

import (
	"fmt"
	"time"
)

// ParseDate accepts a plain calendar day or an RFC3339 timestamp (some
// frontends send either) and returns it truncated to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
}
