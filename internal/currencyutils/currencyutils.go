// Package currencyutils handles the Austrian/German number format used in
// Bank Austria exports.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// FixAmountString converts a German formatted amount string ("1.234,56",
// "-12,00") into a form decimal.NewFromString accepts ("1234.56", "-12.00").
// The period is a thousands separator and the comma the decimal separator.
// Returns an error when the input contains no digit at all.
func FixAmountString(amountStr string) (string, error) {
	s := strings.TrimSpace(amountStr)
	if !strings.ContainsAny(s, "0123456789") {
		return "", fmt.Errorf("no digits in amount %q", amountStr)
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return s, nil
}

// ParseAmount parses a German formatted amount string into a decimal value.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	fixed, err := FixAmountString(amountStr)
	if err != nil {
		return decimal.Zero, err
	}

	amount, err := decimal.NewFromString(fixed)
	if err != nil {
		log.WithField("amount", amountStr).Debug("Amount did not parse as a decimal")
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}
