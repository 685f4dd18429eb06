// Package identity derives stable transaction identifiers used by
// downstream consumers to deduplicate overlapping imports.
package identity

import (
	"crypto/sha1" // #nosec G505 -- dedup identifier, not a security boundary
	"encoding/hex"
	"strings"

	"bankaustria-csv/internal/models"
)

// TransactionID hashes the normalized fields that tell two transactions
// on the same statement apart: value date, signed amount, payee, memo and
// document number. Re-parsing the identical row yields the identical id.
// Best-effort uniqueness only; two rows differing in none of these fields
// collide.
func TransactionID(tx *models.Transaction) string {
	h := sha1.New() // #nosec G401
	h.Write([]byte(strings.Join([]string{
		tx.ValueDate,
		tx.Amount.String(),
		tx.Payee,
		tx.Memo,
		tx.CheckNo,
	}, "|")))
	return hex.EncodeToString(h.Sum(nil))
}
