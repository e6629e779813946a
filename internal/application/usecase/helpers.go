package usecase

import (
	"strings"
	"time"

	"github.com/voyagetech/voyagecrm-api/internal/domain"
)

// dateLayouts accepted for date fields in request bodies, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate parses a required date string.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrInvalidInput
}

// parseOptionalDate parses a date string, returning nil for empty input.
func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// oneOf reports whether v is in allowed (exact match).
func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
