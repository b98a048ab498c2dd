package model

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the canonical date layout used on disk and in API payloads
// (day first, dash separated — "31-12-2025").
const DateFormat = "02-01-2006"

// dateFormatSlash is the legacy layout still present in old ventes files.
const dateFormatSlash = "02/01/2006"

// ParseDate accepts both the canonical dash layout and the legacy slash
// layout. Everything is normalized back to DateFormat on save.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date vide")
	}
	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateFormatSlash, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("date invalide: %q", s)
}

// FormatDate renders t in the canonical layout. The zero time renders as an
// empty string so freshly created empty tables stay blank.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}

// DateOnly truncates t to midnight so inclusive day-level comparisons work
// regardless of the wall-clock time the caller passed in.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
