package dto

import (
	"time"

	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the request payload for creating an account
type CreateAccountRequest struct {
	Code           string             `json:"code" binding:"required,alphanum,min=4,max=10"`
	Name           string             `json:"name" binding:"required,min=1,max=100"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	Description    string             `json:"description" binding:"omitempty,max=255"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
}

// UpdateAccountRequest defines the request payload for updating account metadata.
// Code and type are immutable after creation.
type UpdateAccountRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// SetOpeningBalanceRequest defines the request payload for the opening balance override
type SetOpeningBalanceRequest struct {
	OpeningBalance decimal.Decimal `json:"openingBalance" binding:"required"`
	Force          bool            `json:"force"`
}

// ListAccountsParams defines the query parameters for listing accounts
type ListAccountsParams struct {
	AccountType     *domain.AccountType `form:"accountType" binding:"omitempty,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	IncludeInactive bool                `form:"includeInactive"`
}

// AccountResponse defines the response payload for account details
type AccountResponse struct {
	AccountID      string             `json:"accountId"`
	SocietyID      string             `json:"societyId"`
	Code           string             `json:"code"`
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"accountType"`
	Description    string             `json:"description,omitempty"`
	IsActive       bool               `json:"isActive"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	Balance        decimal.Decimal    `json:"balance"`
	CreatedAt      time.Time          `json:"createdAt"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
}

// ListAccountsResponse defines the response payload for account listing
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// SetOpeningBalanceResponse pairs the updated account with the balance sheet
// validation run after the override. Validation is omitted when the check
// could not be run.
type SetOpeningBalanceResponse struct {
	Account    AccountResponse                 `json:"account"`
	Validation *BalanceSheetValidationResponse `json:"validation,omitempty"`
}

// AccountBalanceResponse defines the response payload for a recomputed balance
type AccountBalanceResponse struct {
	AccountID      string          `json:"accountId"`
	Code           string          `json:"code"`
	StoredBalance  decimal.Decimal `json:"storedBalance"`
	DerivedBalance decimal.Decimal `json:"derivedBalance"`
	InSync         bool            `json:"inSync"`
}

// ToAccountResponse converts a domain account to its response representation
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		SocietyID:      a.SocietyID,
		Code:           a.Code,
		Name:           a.Name,
		AccountType:    a.AccountType,
		Description:    a.Description,
		IsActive:       a.IsActive,
		OpeningBalance: a.OpeningBalance,
		Balance:        a.Balance,
		CreatedAt:      a.CreatedAt,
		LastUpdatedAt:  a.LastUpdatedAt,
	}
}

// ToListAccountsResponse converts domain accounts to the list response
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, ToAccountResponse(&accounts[i]))
	}
	return ListAccountsResponse{Accounts: out}
}
