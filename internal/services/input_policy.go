package services

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseOptionalDate accepts a well-formed YYYY-MM-DD string and returns
// it normalized. Empty and malformed input both coerce to nil rather
// than failing the request; intake forms stay lenient about dates.
func ParseOptionalDate(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, trimmed); err != nil {
		return nil
	}
	return &trimmed
}

// OptionalText trims the input and returns nil for the empty string.
func OptionalText(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
