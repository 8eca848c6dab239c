package services

import (
	"context"

	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	"github.com/jayamurli1954/GharMitra-sub002/internal/dto"
)

// JournalReaderSvc defines read operations on journals
type JournalReaderSvc interface {
	// GetJournalByID retrieves a journal with its lines
	GetJournalByID(ctx context.Context, societyID string, journalID string, userID string) (*domain.Journal, error)

	// ListJournals retrieves the society's journals with keyset pagination
	ListJournals(ctx context.Context, societyID string, params dto.ListJournalsParams, userID string) ([]domain.Journal, *string, error)

	// ListTransactionsByAccount retrieves an account statement with keyset pagination
	ListTransactionsByAccount(ctx context.Context, societyID string, params dto.ListTransactionsParams, userID string) ([]domain.Transaction, *string, error)
}

// JournalWriterSvc defines write operations on journals
type JournalWriterSvc interface {
	// CreateJournal validates, numbers and atomically posts a balanced journal
	CreateJournal(ctx context.Context, societyID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, error)

	// ReverseJournal posts a mirror-image journal that undoes a posted journal
	// and links the two
	ReverseJournal(ctx context.Context, societyID string, journalID string, userID string) (*domain.Journal, error)
}

// JournalSvcFacade is the complete interface for journal operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
