package utils

import (
	"fmt"
	"strconv"
)

// ParseID parses a positive integer identifier from a path segment.
func ParseID(value string) (int64, error) {
	if value == "" {
		return 0, fmt.Errorf("id is required")
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id %q is not an integer", value)
	}

	if id < 1 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}

	return id, nil
}
