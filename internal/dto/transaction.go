package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SimpleTransactionKind classifies a simplified posting as money in or money out
type SimpleTransactionKind string

const (
	SimpleIncome  SimpleTransactionKind = "INCOME"
	SimpleExpense SimpleTransactionKind = "EXPENSE"
)

// PaymentMethod selects the cash or bank control account for a simplified posting
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentBank PaymentMethod = "BANK"
)

// PostTransactionRequest defines the simplified single-entry request payload.
// The service translates it into a balanced two-line journal.
type PostTransactionRequest struct {
	Kind                 SimpleTransactionKind `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	AccountCode          string                `json:"accountCode" binding:"required,alphanum,min=4,max=10"`
	Amount               decimal.Decimal       `json:"amount" binding:"required"`
	Date                 time.Time             `json:"date" binding:"required" time_format:"2006-01-02"`
	Description          string                `json:"description" binding:"required,min=1,max=255"`
	PaymentMethod        PaymentMethod         `json:"paymentMethod" binding:"required,oneof=CASH BANK"`
	FlatID               *string               `json:"flatId" binding:"omitempty,max=20"`
	AllowNegativeBalance bool                  `json:"allowNegativeBalance"`
}
