package baparser

import (
	"fmt"
	"strings"

	"bankaustria-csv/internal/currencyutils"
	"bankaustria-csv/internal/dateutils"
	"bankaustria-csv/internal/identity"
	"bankaustria-csv/internal/models"
	"bankaustria-csv/internal/textutils"
)

// Column positions in the Bank Austria export.
const (
	colBookingDate  = iota // Buchungsdatum
	colValueDate           // Valutadatum
	colBookingText         // Buchungstext
	colNote                // Interne Notiz
	colCurrency            // Waehrung
	colAmount              // Betrag
	colDocDetails          // Belegdaten
	colDocNumber           // Belegnummer
	colPayerName           // Auftraggebername
	colPayerAccount        // Auftraggeberkonto
	colPayerBLZ            // Auftraggeber BLZ
	colPayeeName           // Empfaengername
	colPayeeAccount        // Empfaengerkonto
	colPayeeBLZ            // Empfaenger BLZ
	colReason              // Zahlungsgrund

	numColumns
)

// ParseRecord converts one raw export row into a transaction. The first
// row of the file is the header and yields (nil, nil). The statement
// accumulates the lazily initialized currency, which the POS/ATM narrative
// format needs for its memo.
//
// An amount column that holds no number is the only row-fatal failure;
// every unmatched narrative layout degrades to an "ERR: " sentinel memo
// instead.
func ParseRecord(row []string, index int, stmt *models.Statement) (*models.Transaction, error) {
	// The header row never becomes a record.
	if index == 0 {
		return nil, nil
	}
	if len(row) < numColumns {
		return nil, rowError("row", fmt.Sprintf("%d columns", len(row)),
			fmt.Errorf("expected %d columns", numColumns))
	}

	amount, err := currencyutils.ParseAmount(row[colAmount])
	if err != nil {
		return nil, rowError("amount", row[colAmount], err)
	}

	tx := &models.Transaction{
		Date:      row[colBookingDate],
		ValueDate: row[colValueDate],
		Amount:    amount,
		CheckNo:   row[colDocNumber],
		Payee:     row[colPayeeName],
		Memo:      row[colReason],
	}
	normalizeDates(tx)

	tx.Type = models.TypeCredit
	if amount.IsNegative() {
		tx.Type = models.TypeDebit
	}

	// First row that carries a currency sets it for the whole statement.
	if stmt.Currency == "" && row[colCurrency] != "" {
		stmt.Currency = row[colCurrency]
	}
	tx.Currency = stmt.Currency

	classify(tx, row, stmt.Currency)

	tx.Payee = textutils.CleanWhitespace(tx.Payee)
	tx.Memo = textutils.CleanWhitespace(tx.Memo)

	// Internal notes ride along in the memo behind a fixed tag.
	if row[colNote] != "" {
		if tx.Memo != "" {
			tx.Memo += " "
		}
		tx.Memo += "(NOTE: )" + row[colNote]
	}

	tx.ID = identity.TransactionID(tx)
	return tx, nil
}

// classify inspects the raw, untrimmed booking text (and for SEPA rows the
// document details) against an ordered list of known prefixes. First match
// wins; the order mirrors how the formats shadow each other in real
// exports.
func classify(tx *models.Transaction, row []string, currency string) {
	text := row[colBookingText]
	details := row[colDocDetails]

	switch {
	case strings.HasPrefix(text, "POS"):
		tx.Type = models.TypePOS
		tx.Memo = parsePosAtm(text, currency)

	case strings.HasPrefix(text, "ATM"):
		tx.Type = models.TypeATM
		tx.Memo = parsePosAtm(text, currency)

	case strings.HasPrefix(text, "AUTOMAT"), strings.HasPrefix(text, "BANKOMAT"):
		// AUTOMAT   00011942 K1   14.01. 13:47     O
		// BANKOMAT  00021241 K4   08.03. 09:43     O
		tx.Type = models.TypeATM
		tx.Memo = text

	case strings.HasPrefix(text, "ABHEBUNG AUTOMAT"):
		// ABHEBUNG AUTOMAT NR. 14547 AM 31.01. UM 15.53 UHR Fil.ABC BANKCARD 2
		tx.Type = models.TypeATM
		tx.Memo = text

	case strings.HasPrefix(text, "EINZAHLUNG"):
		// EINZAHLUNG AUTOMAT NR. 55145 AM 31.01. / 15.55 UHR Fil.ABC BANKCARD 2 EIGENERLAG
		tx.Memo = text

	case strings.HasPrefix(text, "Lastschrift JustinCase"):
		tx.Memo = text

	case strings.HasPrefix(details, "SEPA-AUFTRAGSBESTÄTIGUNG"):
		// Memo may already hold the Zahlungsgrund column; keep it.
		if tx.Memo == "" {
			tx.Memo = parseDocument(details)
		}

	case strings.HasPrefix(details, "GUTSCHRIFT"),
		strings.HasPrefix(details, "SEPA"),
		strings.HasPrefix(details, "ÜBERWEISUNG"):
		// For incoming transfers the payer column carries the counterparty.
		tx.Payee = row[colPayerName]
		if tx.Memo == "" {
			tx.Memo = parseDocument(details)
		}

	default:
		tx.Memo = text
	}
}

func normalizeDates(tx *models.Transaction) {
	var err error
	if tx.Date, err = dateutils.NormalizeDate(tx.Date); err != nil {
		log.WithField("date", tx.Date).Warn("Unparseable booking date, keeping verbatim")
	}
	if tx.ValueDate, err = dateutils.NormalizeDate(tx.ValueDate); err != nil {
		log.WithField("date", tx.ValueDate).Warn("Unparseable value date, keeping verbatim")
	}
}
