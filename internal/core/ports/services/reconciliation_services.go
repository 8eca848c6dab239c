package services

import (
	"context"

	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
)

// ReconciliationSvcFacade runs ledger integrity checks for a society
type ReconciliationSvcFacade interface {
	// ValidateBalanceSheet checks the accounting equation across the whole
	// ledger, treating the net of income and expense as retained surplus
	ValidateBalanceSheet(ctx context.Context, societyID string, userID string) (*domain.BalanceSheetValidation, error)

	// MemberDuesReport returns per-flat outstanding dues on the receivable
	// control account
	MemberDuesReport(ctx context.Context, societyID string, userID string) ([]domain.FlatDues, error)

	// ReconcileDuesAgainstGL compares the sum of per-flat dues with the
	// control account balance
	ReconcileDuesAgainstGL(ctx context.Context, societyID string, userID string) (*domain.DuesReconciliation, error)
}
