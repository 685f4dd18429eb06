// Package parsererror defines the typed errors the parser surfaces to its
// callers.
package parsererror

import "fmt"

// ParseError represents a row-fatal parsing failure, such as an amount
// column that holds no number. The row it concerns produces no record.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a file that does not look like a Bank Austria
// export at all.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
