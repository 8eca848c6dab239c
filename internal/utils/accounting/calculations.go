package accounting

import (
	"fmt"

	"github.com/jayamurli1954/GharMitra-sub002/internal/apperrors"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the epsilon used when comparing debit and credit
// totals: one hundredth of a currency unit.
var BalanceTolerance = decimal.New(1, -2)

// CalculateSignedAmount applies the correct sign to a transaction amount
// based on account type and transaction type. Used in both services and
// repositories to keep the accounting convention in one place.
//
// DEBIT to ASSET/EXPENSE -> Positive (+)
// CREDIT to ASSET/EXPENSE -> Negative (-)
// DEBIT to LIABILITY/EQUITY/INCOME -> Negative (-)
// CREDIT to LIABILITY/EQUITY/INCOME -> Positive (+)
func CalculateSignedAmount(txn domain.Transaction, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := txn.Amount
	isDebit := txn.TransactionType == domain.Debit

	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Income:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, txn.AccountID)
	}
	return signedAmount, nil
}

// SumDebitsAndCredits totals the two sides of a set of transaction lines.
func SumDebitsAndCredits(transactions []domain.Transaction) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, txn := range transactions {
		if txn.TransactionType == domain.Debit {
			debits = debits.Add(txn.Amount)
		} else {
			credits = credits.Add(txn.Amount)
		}
	}
	return debits, credits
}

// ValidateJournalBalance checks the double-entry invariants for a set of
// lines: at least two lines, at least one debit and one credit, every
// amount strictly positive, and debit and credit totals equal within
// BalanceTolerance. An imbalance is returned as an UnbalancedEntryError
// carrying both totals and the signed difference.
func ValidateJournalBalance(transactions []domain.Transaction) error {
	if len(transactions) < 2 {
		return fmt.Errorf("%w: journal must have at least two transaction lines", apperrors.ErrValidation)
	}

	debitLines := 0
	creditLines := 0
	for i := range transactions {
		if err := transactions[i].Validate(); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if transactions[i].TransactionType == domain.Debit {
			debitLines++
		} else {
			creditLines++
		}
	}
	if debitLines == 0 || creditLines == 0 {
		return fmt.Errorf("%w: journal must have at least one debit and one credit line", apperrors.ErrValidation)
	}

	debits, credits := SumDebitsAndCredits(transactions)
	if debits.Sub(credits).Abs().GreaterThan(BalanceTolerance) {
		return apperrors.NewUnbalancedEntryError(debits, credits)
	}
	return nil
}

// CalculateJournalAmount computes the economic value of a balanced journal:
// the total of its debit side.
func CalculateJournalAmount(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.TransactionType == domain.Debit {
			total = total.Add(txn.Amount)
		}
	}
	return total
}
