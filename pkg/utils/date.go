package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta uma data no formato YYYY-MM-DD (UTC, sem fuso).
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr = strings.TrimSpace(dateStr); dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseTimestamp interpreta um timestamp ISO-8601 com fuso, com ou sem fração de segundos.
func ParseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, strings.TrimSpace(value))
}
