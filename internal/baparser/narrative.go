package baparser

import (
	"fmt"
	"regexp"
	"strings"
)

// POS/ATM booking texts use a fixed-width, space-padded layout:
//
//	123456789x123456789x123456789x123456789x123456789x123456789x123456789x123456789x123456789x
//	ATM         100,00 AT  K1   15.01. 19:08 O ATM S6EE0275           KLOSTERNEUBUR 4300
//	POS          11,00 NL  K1   16.01. 14:46 O NS SCHIPHOL 216        LUCHTHAVEN SC 1118 AX
//	TYPE           AMT CC  ##    DATE   TIME O SHOP                   LOCATION      ZIP
var posAtmPattern = regexp.MustCompile(`(POS|ATM) +([0-9]+,[0-9]+) ([A-Z]+) +(K[0-9]) +(......) (..:..) O (.{22}) +(.{13}) +(.*)`)

// parsePosAtm extracts the fixed POS/ATM layout from a booking text and
// reassembles it into a readable memo, e.g.
//
//	POS: NS SCHIPHOL 216, 1118 AX LUCHTHAVEN SC, NL; 11,00 EUR on 16.01. 14:46h
//
// When the layout does not match, the memo is the original text behind an
// "ERR: " sentinel so the anomaly stays visible for manual review.
func parsePosAtm(text, currency string) string {
	m := posAtmPattern.FindStringSubmatch(text)
	if m == nil {
		return "ERR: " + text
	}

	return fmt.Sprintf("%s: %s, %s %s, %s; %s %s on %s %sh",
		m[1], strings.TrimSpace(m[7]), m[9], strings.TrimSpace(m[8]), m[3],
		m[2], currency, m[5], m[6])
}

// SEPA document details pack labeled sub-fields into fixed maximum spans:
// document number (18), payee or payer name (56), payment reason (105) and
// payment reference (110).
var documentPattern = regexp.MustCompile(`.*Belegnr.: ([0-9.]{18}).*(?:Zahlungsempf|Zahlungspfl).: (.{56}).*Zahlungsgrund: (.{105}).*Zahlungsref.: (.{110})`)

// parseDocument extracts the labeled SEPA sub-fields from a document
// details string and picks the payment reason, falling back to the payment
// reference when the reason span is blank. Unmatched input degrades to the
// "ERR: " sentinel.
func parseDocument(details string) string {
	m := documentPattern.FindStringSubmatch(details)
	if m == nil {
		return "ERR: " + details
	}

	if reason := strings.TrimSpace(m[3]); reason != "" {
		return reason
	}
	return strings.TrimSpace(m[4])
}
