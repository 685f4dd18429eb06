package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	cause := errors.New("no digits in amount")
	err := &ParseError{Parser: "bankaustria", Field: "amount", Value: "n/a", Err: cause}

	assert.Contains(t, err.Error(), "bankaustria")
	assert.Contains(t, err.Error(), "amount")
	assert.Contains(t, err.Error(), "n/a")
	assert.ErrorIs(t, err, cause)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "export.csv", Reason: "expected 15 columns"}
	assert.Contains(t, err.Error(), "export.csv")
	assert.Contains(t, err.Error(), "15 columns")
}
