package util

import (
	"strings"
	"time"
)

// DateLayout is the calendar layout used for filter bounds and display.
const DateLayout = "2006-01-02"

// dateLayouts are tried in order. RFC1123 covers what Flask's jsonify emits for timestamps.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// ParseDate parses s and truncates it to a calendar date at UTC midnight.
// The calendar day is taken in the zone the string was written in.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TruncateDay(t), true
		}
	}
	return time.Time{}, false
}

// TruncateDay drops time-of-day, keeping the calendar date of t in its own location.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
