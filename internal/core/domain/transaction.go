package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction represents a single line item within a Journal, affecting one
// account. Amount is always strictly positive; the side is carried by
// TransactionType.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	JournalID       string          `json:"journalID"`     // FK -> Journal.journalID (Not Null)
	AccountID       string          `json:"accountID"`     // FK -> Account.accountID (Not Null)
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	FlatID          *string         `json:"flatID,omitempty"` // Optional member/flat dimension tag
	Notes           string          `json:"notes"`
	RunningBalance  decimal.Decimal `json:"runningBalance"` // Account balance after this line

	// Denormalized journal fields, populated on reads joining the header.
	JournalDate        time.Time `json:"journalDate,omitempty"`
	JournalDescription string    `json:"journalDescription,omitempty"`

	AuditFields
}

// Validate checks line-level invariants: identifiers present, a strictly
// positive amount and a known side.
func (t *Transaction) Validate() error {
	if t.AccountID == "" {
		return fmt.Errorf("transaction %s has no account", t.TransactionID)
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("transaction amount must be positive for transaction %s", t.TransactionID)
	}
	if t.TransactionType != Debit && t.TransactionType != Credit {
		return fmt.Errorf("transaction %s has unknown type %q", t.TransactionID, t.TransactionType)
	}
	return nil
}
