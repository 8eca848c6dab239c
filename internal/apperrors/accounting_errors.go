package apperrors

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// UnbalancedEntryError reports a journal whose debit and credit totals differ.
// Callers need both totals and the signed difference to render a precise
// rejection message, so this carries them as fields rather than flattening
// them into a string.
type UnbalancedEntryError struct {
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
	Difference  decimal.Decimal // DebitTotal - CreditTotal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("journal is unbalanced: debits %s, credits %s, difference %s",
		e.DebitTotal.String(), e.CreditTotal.String(), e.Difference.String())
}

func (e *UnbalancedEntryError) Unwrap() error { return ErrValidation }

// NewUnbalancedEntryError builds an UnbalancedEntryError from the two totals.
func NewUnbalancedEntryError(debitTotal, creditTotal decimal.Decimal) *UnbalancedEntryError {
	return &UnbalancedEntryError{
		DebitTotal:  debitTotal,
		CreditTotal: creditTotal,
		Difference:  debitTotal.Sub(creditTotal),
	}
}

// CrossSocietyError reports a journal line referencing an account that
// belongs to a different society than the one being posted to. This is a
// hard tenancy fault and is never recovered.
type CrossSocietyError struct {
	SocietyID        string
	AccountID        string
	AccountSocietyID string
}

func (e *CrossSocietyError) Error() string {
	return fmt.Sprintf("account %s belongs to society %s, not %s",
		e.AccountID, e.AccountSocietyID, e.SocietyID)
}

func (e *CrossSocietyError) Unwrap() error { return ErrForbidden }

// InsufficientBalanceError reports a cash posting that would drive the
// control account negative. It is a soft failure: the caller may resubmit
// with an explicit override.
type InsufficientBalanceError struct {
	AccountCode string
	Available   decimal.Decimal
	Required    decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance on account %s: available %s, required %s",
		e.AccountCode, e.Available.String(), e.Required.String())
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrValidation }

// AlreadyInitializedError reports that a society's chart of accounts is not
// empty. The existing codes are included so the caller can decide whether to
// wipe and re-initialize.
type AlreadyInitializedError struct {
	SocietyID     string
	ExistingCodes []string
}

func (e *AlreadyInitializedError) Error() string {
	return fmt.Sprintf("chart of accounts for society %s already initialized (existing codes: %s)",
		e.SocietyID, strings.Join(e.ExistingCodes, ", "))
}

func (e *AlreadyInitializedError) Unwrap() error { return ErrConflict }

// SequenceCollisionError reports a duplicate voucher number. The sequencer's
// design makes this structurally impossible, so an occurrence is a
// data-integrity alarm, not something to retry.
type SequenceCollisionError struct {
	SocietyID     string
	VoucherNumber string
}

func (e *SequenceCollisionError) Error() string {
	return fmt.Sprintf("voucher number %s already exists in society %s: sequence integrity violated",
		e.VoucherNumber, e.SocietyID)
}

func (e *SequenceCollisionError) Unwrap() error { return ErrInternal }
