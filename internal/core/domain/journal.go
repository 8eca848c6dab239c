package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// Journal represents a single, balanced financial event composed of multiple
// transaction lines. Once committed a journal is immutable: corrections are
// made by posting a reversing journal, never by editing lines.
type Journal struct {
	JournalID          string          `json:"journalID"`     // Primary Key (UUID)
	SocietyID          string          `json:"societyID"`     // FK -> societies.society_id (NON-NULL)
	JournalDate        time.Time       `json:"journalDate"`   // Date the event occurred
	Description        string          `json:"description"`   // User description (required)
	VoucherType        VoucherType     `json:"voucherType"`   // RECEIPT, PAYMENT or JOURNAL
	VoucherNumber      string          `json:"voucherNumber"` // e.g. "RV-0001"; assigned exactly once at commit
	SequenceNumber     int64           `json:"sequenceNumber"`
	Status             JournalStatus   `json:"status"` // Default: POSTED
	OriginalJournalID  *string         `json:"originalJournalID,omitempty"`  // Set on reversing journals
	ReversingJournalID *string         `json:"reversingJournalID,omitempty"` // Set on reversed journals
	Amount             decimal.Decimal `json:"amount"`                       // Economic value: sum of the debit side
	Transactions       []Transaction   `json:"transactions,omitempty"`
	AuditFields
}

// IsReversal reports whether this journal reverses another journal.
func (j *Journal) IsReversal() bool {
	return j.OriginalJournalID != nil
}
