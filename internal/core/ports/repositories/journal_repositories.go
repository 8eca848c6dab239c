package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherSequencer allocates voucher numbers within a posting transaction
type VoucherSequencer interface {
	// NextVoucherNumber atomically increments and returns the next sequence number
	// for the society and voucher type. Must be called inside the same transaction
	// that persists the journal so a failed posting never consumes a number.
	NextVoucherNumber(ctx context.Context, tx pgx.Tx, societyID string, voucherType domain.VoucherType) (int64, error)

	// GetSequence returns the current sequence state, or nil if none exists yet
	GetSequence(ctx context.Context, societyID string, voucherType domain.VoucherType) (*domain.VoucherSequence, error)
}

// JournalReader defines read operations for journals
type JournalReader interface {
	// FindJournalByID retrieves a journal by ID, without its lines
	FindJournalByID(ctx context.Context, societyID string, journalID string) (*domain.Journal, error)

	// ListJournalsBySociety retrieves journals for a society with keyset pagination
	ListJournalsBySociety(ctx context.Context, societyID string, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error)
}

// JournalWriter defines write operations for journals
type JournalWriter interface {
	// SaveJournal atomically allocates a voucher number, persists the journal with
	// its transaction lines, and applies the account balance changes
	SaveJournal(ctx context.Context, journal *domain.Journal, balanceChanges map[string]decimal.Decimal) (*domain.Journal, error)

	// MarkJournalReversed links an original journal to its reversing journal within a transaction
	MarkJournalReversed(ctx context.Context, tx pgx.Tx, originalJournalID string, reversingJournalID string, userID string, now time.Time) error

	// SaveReversalJournal persists a reversing journal and updates the original,
	// all within one transaction
	SaveReversalJournal(ctx context.Context, reversal *domain.Journal, originalJournalID string, balanceChanges map[string]decimal.Decimal) (*domain.Journal, error)
}

// TransactionReader defines read operations for journal lines
type TransactionReader interface {
	// FindTransactionsByJournalID retrieves the lines of a journal
	FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error)

	// FindTransactionsByJournalIDs retrieves lines for multiple journals
	FindTransactionsByJournalIDs(ctx context.Context, journalIDs []string) (map[string][]domain.Transaction, error)

	// ListTransactionsByAccount retrieves lines touching an account with keyset pagination
	ListTransactionsByAccount(ctx context.Context, societyID string, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// JournalRepositoryWithTransactionManager combines journal repository capabilities with transaction management
type JournalRepositoryWithTransactionManager interface {
	JournalReader
	JournalWriter
	TransactionReader
	VoucherSequencer
	TransactionManager
}

// JournalRepositoryFacade is the complete interface for journal persistence
type JournalRepositoryFacade interface {
	JournalRepositoryWithTransactionManager
}
