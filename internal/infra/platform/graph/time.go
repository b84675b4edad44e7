package graph

import "time"

// Graph timestamps use a numeric zone without a colon.
const timeLayout = "2006-01-02T15:04:05-0700"

// ParseTime parses a Graph timestamp, returning fallback when value is empty or malformed.
func ParseTime(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	for _, layout := range []string{timeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}

	return fallback
}
