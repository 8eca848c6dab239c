package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// accountCodePattern constrains ledger codes to 4-10 alphanumeric characters.
var accountCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{4,10}$`)

// ValidAccountCode reports whether code satisfies the chart-of-accounts
// code constraint.
func ValidAccountCode(code string) bool {
	return accountCodePattern.MatchString(code)
}

// Account represents a single ledger account in a society's chart of accounts.
type Account struct {
	AccountID      string          `json:"accountID"` // Primary Key (UUID)
	SocietyID      string          `json:"societyID"` // FK -> societies.society_id (NON-NULL)
	Code           string          `json:"code"`      // Ledger code, unique per society, 4-10 chars
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	Description    string          `json:"description"`
	IsActive       bool            `json:"isActive"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Set once, or corrected via explicit override
	Balance        decimal.Decimal `json:"balance"`        // Current balance: opening plus all posted lines
	AuditFields
}

// NormalBalanceIsDebit reports whether a debit increases this account type.
func (t AccountType) NormalBalanceIsDebit() bool {
	return t == Asset || t == Expense
}
