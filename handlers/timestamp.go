package handlers

import (
	"fmt"
	"time"
)

// isoLayouts are the timestamp shapes the front end is known to send:
// full RFC 3339 with a UTC marker, and progressively truncated local
// forms down to minute resolution.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseISOTimestamp parses an extended ISO 8601 timestamp, accepting a
// trailing UTC marker.
func parseISOTimestamp(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
