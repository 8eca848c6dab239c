package dto

import (
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSheetValidationResponse defines the response payload for the balance sheet check
type BalanceSheetValidationResponse struct {
	TotalAssets         decimal.Decimal `json:"totalAssets"`
	TotalLiabilities    decimal.Decimal `json:"totalLiabilities"`
	TotalEquity         decimal.Decimal `json:"totalEquity"`
	TotalIncome         decimal.Decimal `json:"totalIncome"`
	TotalExpense        decimal.Decimal `json:"totalExpense"`
	Difference          decimal.Decimal `json:"difference"`
	IsBalanced          bool            `json:"isBalanced"`
	SuggestedCorrection decimal.Decimal `json:"suggestedCorrection,omitempty"`
	SuggestedAccount    string          `json:"suggestedAccount,omitempty"`
}

// FlatDuesResponse defines the outstanding dues for a single flat
type FlatDuesResponse struct {
	FlatID      string          `json:"flatId"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// DuesReconciliationResponse defines the response payload for the dues reconciliation check
type DuesReconciliationResponse struct {
	ControlAccountCode string             `json:"controlAccountCode"`
	ControlBalance     decimal.Decimal    `json:"controlBalance"`
	DuesTotal          decimal.Decimal    `json:"duesTotal"`
	Difference         decimal.Decimal    `json:"difference"`
	IsReconciled       bool               `json:"isReconciled"`
	Flats              []FlatDuesResponse `json:"flats"`
}

// ToBalanceSheetValidationResponse converts the domain validation result
func ToBalanceSheetValidationResponse(v *domain.BalanceSheetValidation) BalanceSheetValidationResponse {
	return BalanceSheetValidationResponse{
		TotalAssets:         v.TotalAssets,
		TotalLiabilities:    v.TotalLiabilities,
		TotalEquity:         v.TotalEquity,
		TotalIncome:         v.TotalIncome,
		TotalExpense:        v.TotalExpense,
		Difference:          v.Difference,
		IsBalanced:          v.IsBalanced,
		SuggestedCorrection: v.SuggestedCorrection,
		SuggestedAccount:    v.SuggestedAccountCode,
	}
}

// ToDuesReconciliationResponse converts the domain reconciliation result
func ToDuesReconciliationResponse(r *domain.DuesReconciliation) DuesReconciliationResponse {
	flats := make([]FlatDuesResponse, 0, len(r.Flats))
	for _, f := range r.Flats {
		flats = append(flats, FlatDuesResponse{FlatID: f.FlatID, Outstanding: f.Outstanding})
	}
	return DuesReconciliationResponse{
		ControlAccountCode: r.ControlAccountCode,
		ControlBalance:     r.ControlBalance,
		DuesTotal:          r.DuesTotal,
		Difference:         r.Difference,
		IsReconciled:       r.IsReconciled,
		Flats:              flats,
	}
}
