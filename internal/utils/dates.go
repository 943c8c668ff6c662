package utils

import (
	"fmt"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDate accepts ISO-8601 timestamps or bare YYYY-MM-DD dates. An empty
// string means the field was omitted and yields a nil time.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("invalid date %q", value)
}
