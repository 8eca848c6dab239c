package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction represents a journal line row.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	JournalID       string          `db:"journal_id"`
	AccountID       string          `db:"account_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionType TransactionType `db:"transaction_type"`
	FlatID          *string         `db:"flat_id"`
	Notes           string          `db:"notes"`
	RunningBalance  decimal.Decimal `db:"running_balance"`

	// Populated by queries joining the journal header.
	JournalDate        time.Time `db:"journal_date"`
	JournalDescription string    `db:"journal_description"`

	AuditFields
}
