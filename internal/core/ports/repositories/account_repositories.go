package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for accounts
type AccountReader interface {
	// FindAccountByID retrieves an account by its unique identifier
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its code within a society
	FindAccountByCode(ctx context.Context, societyID string, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccountsBySociety retrieves accounts for a society, optionally filtered by type
	ListAccountsBySociety(ctx context.Context, societyID string, accountType *domain.AccountType, includeInactive bool) ([]domain.Account, error)

	// ListAccountCodes returns the codes already present for a society
	ListAccountCodes(ctx context.Context, societyID string) ([]string, error)
}

// AccountWriter defines write operations for accounts
type AccountWriter interface {
	// SaveAccount persists a new account
	SaveAccount(ctx context.Context, account *domain.Account) error

	// SaveAccounts persists a batch of accounts atomically
	SaveAccounts(ctx context.Context, accounts []domain.Account) error

	// UpdateAccount updates mutable fields of an existing account
	UpdateAccount(ctx context.Context, account *domain.Account) error

	// SetOpeningBalance updates the opening balance and applies the delta to the current balance
	SetOpeningBalance(ctx context.Context, accountID string, openingBalance decimal.Decimal, balanceDelta decimal.Decimal, userID string, now time.Time) error

	// DeactivateAccount marks an account inactive
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountUsageChecker reports whether an account participates in posted journals
type AccountUsageChecker interface {
	// HasPostedLines returns true if any journal line references the account
	HasPostedLines(ctx context.Context, accountID string) (bool, error)

	// RecalculateBalance recomputes an account balance from opening balance plus posted lines
	RecalculateBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// AccountTransactionSupport defines account operations that run inside a database transaction
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate retrieves accounts with row locks within a transaction
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// UpdateAccountBalancesInTx applies balance changes to accounts within a transaction
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryWithTransactionManager combines account repository capabilities with transaction management
type AccountRepositoryWithTransactionManager interface {
	AccountReader
	AccountWriter
	AccountUsageChecker
	AccountTransactionSupport
	TransactionManager
}

// AccountRepositoryFacade is the complete interface for account persistence
type AccountRepositoryFacade interface {
	AccountRepositoryWithTransactionManager
}
