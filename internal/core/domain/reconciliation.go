package domain

import (
	"github.com/shopspring/decimal"
)

// BalanceSheetValidation is the result of checking the accounting equation
// over a society's current balances. It is a read-only diagnosis: applying
// the suggested correction requires a separate, explicit journal posting.
type BalanceSheetValidation struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`  // Raw equity-account total
	TotalIncome      decimal.Decimal `json:"totalIncome"`  // Period income, part of effective equity
	TotalExpense     decimal.Decimal `json:"totalExpense"` // Period expense, part of effective equity
	Difference       decimal.Decimal `json:"difference"`   // assets - (liabilities + effective equity)
	IsBalanced       bool            `json:"isBalanced"`

	// SuggestedCorrection is the amount a correcting equity posting would
	// need, targeting SuggestedAccountCode. Zero when balanced.
	SuggestedCorrection  decimal.Decimal `json:"suggestedCorrection"`
	SuggestedAccountCode string          `json:"suggestedAccountCode"`
}

// FlatDues is one flat's outstanding amount against the dues control account.
type FlatDues struct {
	FlatID      string          `json:"flatID"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// DuesReconciliation compares the sum of per-flat dues with the general
// ledger balance of the receivables control account.
type DuesReconciliation struct {
	ControlAccountCode string          `json:"controlAccountCode"`
	ControlBalance     decimal.Decimal `json:"controlBalance"`
	DuesTotal          decimal.Decimal `json:"duesTotal"`
	Difference         decimal.Decimal `json:"difference"` // controlBalance - duesTotal
	IsReconciled       bool            `json:"isReconciled"`
	Flats              []FlatDues      `json:"flats"` // Contributing flats, for diagnosis
}
