package repositories

import (
	"context"

	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReconciliationReader defines aggregate read operations used by reconciliation checks
type ReconciliationReader interface {
	// GetBalancesByType returns the summed current balance per account type for a society
	GetBalancesByType(ctx context.Context, societyID string) (map[domain.AccountType]decimal.Decimal, error)

	// GetFlatDues returns the per-flat outstanding amounts derived from lines
	// tagged with a flat on the given control account
	GetFlatDues(ctx context.Context, societyID string, controlAccountID string) ([]domain.FlatDues, error)

	// GetUntaggedDuesTotal returns the portion of the control account balance
	// carried by lines without a flat tag
	GetUntaggedDuesTotal(ctx context.Context, societyID string, controlAccountID string) (decimal.Decimal, error)
}

// ReconciliationRepositoryFacade is the complete interface for reconciliation queries
type ReconciliationRepositoryFacade interface {
	ReconciliationReader
}
