package domain

import (
	"fmt"
	"time"
)

// VoucherType classifies a journal for numbering and display purposes.
type VoucherType string

const (
	Receipt        VoucherType = "RECEIPT"
	Payment        VoucherType = "PAYMENT"
	JournalVoucher VoucherType = "JOURNAL"
)

var voucherPrefixes = map[VoucherType]string{
	Receipt:        "RV",
	Payment:        "PV",
	JournalVoucher: "JV",
}

// ValidVoucherType reports whether t is a known voucher type.
func ValidVoucherType(t VoucherType) bool {
	_, ok := voucherPrefixes[t]
	return ok
}

// FormatVoucherNumber renders the display number for a voucher sequence
// value, e.g. (Receipt, 1) -> "RV-0001". Padding is a minimum; the number
// keeps growing past 9999.
func FormatVoucherNumber(t VoucherType, sequence int64) string {
	return fmt.Sprintf("%s-%04d", voucherPrefixes[t], sequence)
}

// VoucherSequence is the authoritative counter for one (society, voucher
// type) pair. It is the single source of truth for numbering: the next
// number is never derived by scanning journals. The row is locked and
// advanced inside the same database transaction that commits the journal.
type VoucherSequence struct {
	SocietyID   string      `json:"societyID"`
	VoucherType VoucherType `json:"voucherType"`
	LastNumber  int64       `json:"lastNumber"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
