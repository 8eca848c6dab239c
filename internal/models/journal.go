package models

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

// VoucherType classifies a journal for numbering purposes.
type VoucherType string

const (
	Receipt        VoucherType = "RECEIPT"
	Payment        VoucherType = "PAYMENT"
	JournalVoucher VoucherType = "JOURNAL"
)

// Journal represents a journal header row.
type Journal struct {
	JournalID          string          `db:"journal_id"`
	SocietyID          string          `db:"society_id"`
	JournalDate        time.Time       `db:"journal_date"`
	Description        string          `db:"description"`
	VoucherType        VoucherType     `db:"voucher_type"`
	VoucherNumber      string          `db:"voucher_number"`
	SequenceNumber     int64           `db:"sequence_number"`
	Status             JournalStatus   `db:"status"`
	OriginalJournalID  *string         `db:"original_journal_id"`
	ReversingJournalID *string         `db:"reversing_journal_id"`
	Amount             decimal.Decimal `db:"amount"`
	AuditFields
}
