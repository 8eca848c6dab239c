package services

import (
	"context"

	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	"github.com/jayamurli1954/GharMitra-sub002/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations on the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account by ID, scoped to the society
	GetAccountByID(ctx context.Context, societyID string, accountID string, userID string) (*domain.Account, error)

	// GetAccountByCode retrieves an account by its ledger code
	GetAccountByCode(ctx context.Context, societyID string, code string, userID string) (*domain.Account, error)

	// GetAccountsByIDs retrieves multiple accounts by ID for batch validation
	GetAccountsByIDs(ctx context.Context, societyID string, accountIDs []string, userID string) (map[string]domain.Account, error)

	// ListAccounts retrieves the society's accounts, optionally filtered by type
	ListAccounts(ctx context.Context, societyID string, params dto.ListAccountsParams, userID string) ([]domain.Account, error)

	// CalculateAccountBalance recomputes the balance from posted lines and
	// returns it alongside the stored balance
	CalculateAccountBalance(ctx context.Context, societyID string, accountID string, userID string) (stored decimal.Decimal, derived decimal.Decimal, err error)
}

// AccountWriterSvc defines write operations on the chart of accounts
type AccountWriterSvc interface {
	// CreateAccount creates an account in the society's chart
	CreateAccount(ctx context.Context, societyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates account metadata; code and type are immutable
	UpdateAccount(ctx context.Context, societyID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// InitializeDefaultChart seeds the standard housing-society chart of
	// accounts; fails with ErrConflict if any default code already exists
	InitializeDefaultChart(ctx context.Context, societyID string, userID string) ([]domain.Account, error)

	// SetOpeningBalance overrides an account's opening balance. Once the
	// account has posted lines the override requires force, and the caller
	// gets back a fresh balance sheet validation.
	SetOpeningBalance(ctx context.Context, societyID string, accountID string, req dto.SetOpeningBalanceRequest, userID string) (*domain.Account, *domain.BalanceSheetValidation, error)

	// DeactivateAccount marks an account inactive so it rejects new postings
	DeactivateAccount(ctx context.Context, societyID string, accountID string, userID string) error
}

// AccountSvcFacade is the complete interface for account operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
