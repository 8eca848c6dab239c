package dto

import (
	"time"

	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest defines one line of a journal posting request.
// Exactly one of debitAmount and creditAmount must be strictly positive.
type CreateJournalLineRequest struct {
	AccountID    string          `json:"accountId" binding:"required"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	FlatID       *string         `json:"flatId" binding:"omitempty,max=20"`
	Notes        string          `json:"notes" binding:"omitempty,max=255"`
}

// CreateJournalRequest defines the request payload for posting a journal
type CreateJournalRequest struct {
	JournalDate time.Time                  `json:"journalDate" binding:"required" time_format:"2006-01-02"`
	Description string                     `json:"description" binding:"required,min=1,max=255"`
	VoucherType domain.VoucherType         `json:"voucherType" binding:"required,oneof=RECEIPT PAYMENT JOURNAL"`
	Lines       []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ListJournalsParams defines the query parameters for listing journals
type ListJournalsParams struct {
	Limit               int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken           *string `form:"nextToken"`
	IncludeReversals    bool    `form:"includeReversals"`
	IncludeTransactions bool    `form:"includeTransactions"`
}

// ListTransactionsParams defines the query parameters for an account statement
type ListTransactionsParams struct {
	AccountID string  `form:"accountId" binding:"required"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the response payload for a journal line
type TransactionResponse struct {
	TransactionID      string                 `json:"transactionId"`
	JournalID          string                 `json:"journalId"`
	AccountID          string                 `json:"accountId"`
	Amount             decimal.Decimal        `json:"amount"`
	TransactionType    domain.TransactionType `json:"transactionType"`
	FlatID             *string                `json:"flatId,omitempty"`
	Notes              string                 `json:"notes,omitempty"`
	RunningBalance     decimal.Decimal        `json:"runningBalance"`
	JournalDate        time.Time              `json:"journalDate,omitempty"`
	JournalDescription string                 `json:"journalDescription,omitempty"`
}

// JournalResponse defines the response payload for journal details
type JournalResponse struct {
	JournalID          string                `json:"journalId"`
	SocietyID          string                `json:"societyId"`
	JournalDate        time.Time             `json:"journalDate"`
	Description        string                `json:"description"`
	VoucherType        domain.VoucherType    `json:"voucherType"`
	VoucherNumber      string                `json:"voucherNumber"`
	Status             domain.JournalStatus  `json:"status"`
	OriginalJournalID  *string               `json:"originalJournalId,omitempty"`
	ReversingJournalID *string               `json:"reversingJournalId,omitempty"`
	Amount             decimal.Decimal       `json:"amount"`
	Transactions       []TransactionResponse `json:"transactions,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	CreatedBy          string                `json:"createdBy"`
}

// ListJournalsResponse defines the paginated response payload for journal listing
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ListTransactionsResponse defines the paginated response payload for an account statement
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain transaction to its response representation
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:      t.TransactionID,
		JournalID:          t.JournalID,
		AccountID:          t.AccountID,
		Amount:             t.Amount,
		TransactionType:    t.TransactionType,
		FlatID:             t.FlatID,
		Notes:              t.Notes,
		RunningBalance:     t.RunningBalance,
		JournalDate:        t.JournalDate,
		JournalDescription: t.JournalDescription,
	}
}

// ToJournalResponse converts a domain journal to its response representation
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:          j.JournalID,
		SocietyID:          j.SocietyID,
		JournalDate:        j.JournalDate,
		Description:        j.Description,
		VoucherType:        j.VoucherType,
		VoucherNumber:      j.VoucherNumber,
		Status:             j.Status,
		OriginalJournalID:  j.OriginalJournalID,
		ReversingJournalID: j.ReversingJournalID,
		Amount:             j.Amount,
		CreatedAt:          j.CreatedAt,
		CreatedBy:          j.CreatedBy,
	}
	if len(j.Transactions) > 0 {
		resp.Transactions = make([]TransactionResponse, 0, len(j.Transactions))
		for i := range j.Transactions {
			resp.Transactions = append(resp.Transactions, ToTransactionResponse(&j.Transactions[i]))
		}
	}
	return resp
}

// ToListJournalsResponse converts domain journals to the paginated list response
func ToListJournalsResponse(journals []domain.Journal, nextToken *string) ListJournalsResponse {
	out := make([]JournalResponse, 0, len(journals))
	for i := range journals {
		out = append(out, ToJournalResponse(&journals[i]))
	}
	return ListJournalsResponse{Journals: out, NextToken: nextToken}
}

// ToListTransactionsResponse converts domain transactions to the paginated statement response
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, ToTransactionResponse(&txns[i]))
	}
	return ListTransactionsResponse{Transactions: out, NextToken: nextToken}
}
