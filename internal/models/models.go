// Package models provides the data structures shared by the parser and the
// CSV output layer.
package models

import "github.com/shopspring/decimal"

// Transaction is one normalized statement line.
type Transaction struct {
	Date      string          `csv:"Date"`      // booking date (user date), DD.MM.YYYY
	ValueDate string          `csv:"ValueDate"` // value date, DD.MM.YYYY, authoritative for display
	Type      string          `csv:"Type"`      // one of TypeDebit, TypeCredit, TypePOS, TypeATM
	Amount    decimal.Decimal `csv:"Amount"`    // signed; negative means money leaving the account
	Currency  string          `csv:"Currency"`
	CheckNo   string          `csv:"CheckNo"` // document number, passed through
	Payee     string          `csv:"Payee"`
	Memo      string          `csv:"Memo"`
	ID        string          `csv:"ID"`      // deterministic, see internal/identity
	Balance   decimal.Decimal `csv:"Balance"` // running balance after this transaction, derived
}

// IsDebit returns true if the transaction moves money out of the account.
func (t *Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// IsCredit returns true if the transaction moves money into the account.
func (t *Transaction) IsCredit() bool {
	return !t.Amount.IsNegative()
}
