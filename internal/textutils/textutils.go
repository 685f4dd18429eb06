// Package textutils provides text cleanup helpers for narrative fields.
package textutils

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanWhitespace collapses every run of whitespace characters, newlines
// and tabs included, into a single space and trims the edges.
// The function is idempotent.
func CleanWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
