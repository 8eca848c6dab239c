package services

import (
	"context"

	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	"github.com/jayamurli1954/GharMitra-sub002/internal/dto"
)

// TransactionSvcFacade translates simplified single-entry submissions into
// balanced journals and posts them through the journal service
type TransactionSvcFacade interface {
	// PostTransaction builds the two-line journal implied by the request
	// (control account vs. income/expense account) and posts it
	PostTransaction(ctx context.Context, societyID string, req dto.PostTransactionRequest, userID string) (*domain.Journal, error)
}
