package accounting_test

import (
	"testing"

	"github.com/jayamurli1954/GharMitra-sub002/internal/apperrors"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	"github.com/jayamurli1954/GharMitra-sub002/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(accountID string, txnType domain.TransactionType, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID:   "txn-" + accountID,
		AccountID:       accountID,
		Amount:          decimal.RequireFromString(amount),
		TransactionType: txnType,
	}
}

func TestCalculateSignedAmount(t *testing.T) {
	testCases := []struct {
		name        string
		accountType domain.AccountType
		txnType     domain.TransactionType
		expected    string
	}{
		{"debit raises asset", domain.Asset, domain.Debit, "100"},
		{"credit lowers asset", domain.Asset, domain.Credit, "-100"},
		{"debit raises expense", domain.Expense, domain.Debit, "100"},
		{"credit lowers expense", domain.Expense, domain.Credit, "-100"},
		{"debit lowers liability", domain.Liability, domain.Debit, "-100"},
		{"credit raises liability", domain.Liability, domain.Credit, "100"},
		{"debit lowers equity", domain.Equity, domain.Debit, "-100"},
		{"credit raises equity", domain.Equity, domain.Credit, "100"},
		{"debit lowers income", domain.Income, domain.Debit, "-100"},
		{"credit raises income", domain.Income, domain.Credit, "100"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			txn := line("acc-1", tc.txnType, "100")
			signed, err := accounting.CalculateSignedAmount(txn, tc.accountType)
			require.NoError(t, err)
			assert.True(t, signed.Equal(decimal.RequireFromString(tc.expected)),
				"expected %s, got %s", tc.expected, signed.String())
		})
	}
}

func TestCalculateSignedAmount_UnknownAccountType(t *testing.T) {
	txn := line("acc-1", domain.Debit, "100")
	_, err := accounting.CalculateSignedAmount(txn, domain.AccountType("CONTRA"))
	assert.Error(t, err)
}

func TestValidateJournalBalance(t *testing.T) {
	t.Run("balanced journal passes", func(t *testing.T) {
		lines := []domain.Transaction{
			line("cash", domain.Debit, "1500"),
			line("income", domain.Credit, "1500"),
		}
		assert.NoError(t, accounting.ValidateJournalBalance(lines))
	})

	t.Run("split lines pass when totals match", func(t *testing.T) {
		lines := []domain.Transaction{
			line("cash", domain.Debit, "1000"),
			line("bank", domain.Debit, "500"),
			line("income", domain.Credit, "1500"),
		}
		assert.NoError(t, accounting.ValidateJournalBalance(lines))
	})

	t.Run("rounding difference within tolerance passes", func(t *testing.T) {
		lines := []domain.Transaction{
			line("cash", domain.Debit, "100.00"),
			line("income", domain.Credit, "99.99"),
		}
		assert.NoError(t, accounting.ValidateJournalBalance(lines))
	})

	t.Run("unbalanced journal carries totals and difference", func(t *testing.T) {
		lines := []domain.Transaction{
			line("cash", domain.Debit, "1500"),
			line("income", domain.Credit, "1400"),
		}
		err := accounting.ValidateJournalBalance(lines)
		require.Error(t, err)

		var unbalanced *apperrors.UnbalancedEntryError
		require.ErrorAs(t, err, &unbalanced)
		assert.True(t, unbalanced.DebitTotal.Equal(decimal.NewFromInt(1500)))
		assert.True(t, unbalanced.CreditTotal.Equal(decimal.NewFromInt(1400)))
		assert.True(t, unbalanced.Difference.Equal(decimal.NewFromInt(100)))
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("single line rejected", func(t *testing.T) {
		lines := []domain.Transaction{line("cash", domain.Debit, "100")}
		assert.ErrorIs(t, accounting.ValidateJournalBalance(lines), apperrors.ErrValidation)
	})

	t.Run("all debits rejected", func(t *testing.T) {
		lines := []domain.Transaction{
			line("cash", domain.Debit, "100"),
			line("bank", domain.Debit, "100"),
		}
		assert.ErrorIs(t, accounting.ValidateJournalBalance(lines), apperrors.ErrValidation)
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		lines := []domain.Transaction{
			line("cash", domain.Debit, "0"),
			line("income", domain.Credit, "0"),
		}
		assert.ErrorIs(t, accounting.ValidateJournalBalance(lines), apperrors.ErrValidation)
	})
}

func TestCalculateJournalAmount(t *testing.T) {
	lines := []domain.Transaction{
		line("cash", domain.Debit, "1000"),
		line("bank", domain.Debit, "500"),
		line("income", domain.Credit, "1500"),
	}
	amount := accounting.CalculateJournalAmount(lines)
	assert.True(t, amount.Equal(decimal.NewFromInt(1500)))
}

func TestSumDebitsAndCredits(t *testing.T) {
	lines := []domain.Transaction{
		line("cash", domain.Debit, "1000"),
		line("income", domain.Credit, "600"),
		line("penalty", domain.Credit, "400"),
	}
	debits, credits := accounting.SumDebitsAndCredits(lines)
	assert.True(t, debits.Equal(decimal.NewFromInt(1000)))
	assert.True(t, credits.Equal(decimal.NewFromInt(1000)))
}
