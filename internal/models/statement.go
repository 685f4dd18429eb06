package models

import "github.com/shopspring/decimal"

// Statement is the ordered result of parsing one export file.
// Currency is assigned lazily during row processing: the first row that
// carries a currency wins and the value is never overwritten.
type Statement struct {
	BankID         string
	AccountID      string
	Currency       string
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	Transactions   []Transaction
}

// RecalculateBalance rederives the running balances by walking the
// transactions in file order and accumulating signed amounts from the
// opening balance. The balance figures embedded in the source export are
// not trusted. Must run after the full ordered sequence is known.
func RecalculateBalance(stmt *Statement) {
	balance := stmt.OpeningBalance
	for i := range stmt.Transactions {
		balance = balance.Add(stmt.Transactions[i].Amount)
		stmt.Transactions[i].Balance = balance
	}
	stmt.ClosingBalance = balance
}
