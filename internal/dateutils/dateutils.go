// Package dateutils provides date handling for the DD.MM.YYYY format used
// in Austrian bank exports.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// LayoutAustrian is the date layout Bank Austria exports use.
const LayoutAustrian = "02.01.2006"

// ParseDate parses a date in the Austrian export format.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(LayoutAustrian, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", dateStr, err)
	}
	return t, nil
}

// NormalizeDate reformats an export date canonically. An empty input
// stays empty; unparseable input is returned unchanged alongside the
// parse error so callers can decide how loud to be about it.
func NormalizeDate(dateStr string) (string, error) {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return "", nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return dateStr, err
	}
	return t.Format(LayoutAustrian), nil
}
