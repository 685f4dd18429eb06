package models

// Transaction types as consumed by bookkeeping imports.
const (
	TypeDebit  = "DEBIT"
	TypeCredit = "CREDIT"
	TypePOS    = "POS"
	TypeATM    = "ATM"
)

// File permissions
const (
	PermissionOutputFile = 0600
	PermissionDirectory  = 0750
)
