package identity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"bankaustria-csv/internal/models"
)

func TestTransactionIDDeterministic(t *testing.T) {
	tx := models.Transaction{
		ValueDate: "16.01.2025",
		Amount:    decimal.NewFromFloat(-11.00),
		Payee:     "NS SCHIPHOL 216",
		Memo:      "POS: NS SCHIPHOL 216, 1118 AX LUCHTHAVEN SC, NL; 11,00 EUR on 16.01. 14:46h",
		CheckNo:   "12345",
	}
	again := tx

	assert.Equal(t, TransactionID(&tx), TransactionID(&again))
	assert.Len(t, TransactionID(&tx), 40)
}

func TestTransactionIDDistinguishesMemo(t *testing.T) {
	// Same day, same amount, different memo must not collide.
	a := models.Transaction{ValueDate: "16.01.2025", Amount: decimal.NewFromInt(-10), Memo: "Miete Jänner"}
	b := models.Transaction{ValueDate: "16.01.2025", Amount: decimal.NewFromInt(-10), Memo: "Strom Jänner"}

	assert.NotEqual(t, TransactionID(&a), TransactionID(&b))
}

func TestTransactionIDDistinguishesPayee(t *testing.T) {
	a := models.Transaction{ValueDate: "16.01.2025", Amount: decimal.NewFromInt(-10), Payee: "Billa"}
	b := models.Transaction{ValueDate: "16.01.2025", Amount: decimal.NewFromInt(-10), Payee: "Spar"}

	assert.NotEqual(t, TransactionID(&a), TransactionID(&b))
}
