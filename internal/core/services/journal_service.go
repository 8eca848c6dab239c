package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jayamurli1954/GharMitra-sub002/internal/apperrors"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	portsrepo "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/repositories"
	portssvc "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/services"
	"github.com/jayamurli1954/GharMitra-sub002/internal/dto"
	"github.com/jayamurli1954/GharMitra-sub002/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	ErrJournalMinAccounts  = errors.New("journal must affect at least two different accounts")
	ErrAccountNotFound     = errors.New("account not found")
	ErrLineSideAmbiguous   = errors.New("each line must carry exactly one of debitAmount or creditAmount")
	ErrInvalidVoucherType  = errors.New("unknown voucher type")
	ErrDescriptionMissing  = errors.New("journal description is required")
	ErrJournalDateRequired = errors.New("journal date is required")
)

const reversalDescriptionPrefix = "Reversal of: "

// journalService provides core journal posting and reversal operations.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade, societySvc portssvc.SocietyAuthorizerSvc) portssvc.JournalSvcFacade {
	return &journalService{
		BaseService: BaseService{SocietyAuthorizer: societySvc},
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildTransactions converts request lines into domain transactions. Each
// line must carry exactly one strictly positive side.
func buildTransactions(lines []dto.CreateJournalLineRequest, journalID string, userID string, now time.Time) ([]domain.Transaction, error) {
	transactions := make([]domain.Transaction, len(lines))
	for i, line := range lines {
		debitSet := line.DebitAmount.GreaterThan(decimal.Zero)
		creditSet := line.CreditAmount.GreaterThan(decimal.Zero)
		if line.DebitAmount.IsNegative() || line.CreditAmount.IsNegative() {
			return nil, fmt.Errorf("%w: negative amount on account %s", apperrors.ErrValidation, line.AccountID)
		}
		if debitSet == creditSet {
			return nil, fmt.Errorf("%w: account %s", ErrLineSideAmbiguous, line.AccountID)
		}

		amount := line.DebitAmount
		txnType := domain.Debit
		if creditSet {
			amount = line.CreditAmount
			txnType = domain.Credit
		}

		transactions[i] = domain.Transaction{
			TransactionID:   uuid.NewString(),
			JournalID:       journalID,
			AccountID:       line.AccountID,
			Amount:          amount,
			TransactionType: txnType,
			FlatID:          line.FlatID,
			Notes:           line.Notes,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}
	return transactions, nil
}

// CreateJournal validates, numbers and atomically posts a balanced journal.
func (s *journalService) CreateJournal(ctx context.Context, societyID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, userID, societyID, domain.RoleMember); err != nil {
		return nil, err
	}

	if !domain.ValidVoucherType(req.VoucherType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVoucherType, req.VoucherType)
	}
	if req.Description == "" {
		return nil, ErrDescriptionMissing
	}
	if req.JournalDate.IsZero() {
		return nil, ErrJournalDateRequired
	}

	now := time.Now().UTC()
	journalID := uuid.NewString()

	transactions, err := buildTransactions(req.Lines, journalID, userID, now)
	if err != nil {
		return nil, err
	}

	// Double-entry invariants: two or more lines, both sides present, totals
	// equal within tolerance.
	if err := accounting.ValidateJournalBalance(transactions); err != nil {
		return nil, err
	}

	accountSet := make(map[string]bool)
	accountIDs := make([]string, 0, len(transactions))
	for _, txn := range transactions {
		if !accountSet[txn.AccountID] {
			accountSet[txn.AccountID] = true
			accountIDs = append(accountIDs, txn.AccountID)
		}
	}
	if len(accountIDs) < 2 {
		return nil, ErrJournalMinAccounts
	}

	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, societyID, accountIDs, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for journal creation", "society_id", societyID)
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	accountTypes := make(map[string]domain.AccountType)
	for _, id := range accountIDs {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, id)
		}
		if acc.SocietyID != societyID {
			s.LogError(ctx, apperrors.ErrForbidden, "Journal line references account from another society",
				"society_id", societyID, "account_id", id, "account_society_id", acc.SocietyID)
			return nil, &apperrors.CrossSocietyError{
				SocietyID:        societyID,
				AccountID:        id,
				AccountSocietyID: acc.SocietyID,
			}
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, acc.Code)
		}
		accountTypes[id] = acc.AccountType
	}

	balanceChanges := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		signedAmount, err := accounting.CalculateSignedAmount(txn, accountTypes[txn.AccountID])
		if err != nil {
			return nil, fmt.Errorf("internal error calculating balance changes: %w", err)
		}
		balanceChanges[txn.AccountID] = balanceChanges[txn.AccountID].Add(signedAmount)
	}

	journal := domain.Journal{
		JournalID:    journalID,
		SocietyID:    societyID,
		JournalDate:  req.JournalDate,
		Description:  req.Description,
		VoucherType:  req.VoucherType,
		Status:       domain.Posted,
		Amount:       accounting.CalculateJournalAmount(transactions),
		Transactions: transactions,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// The repository allocates the voucher number inside the same database
	// transaction that persists the journal.
	saved, err := s.journalRepo.SaveJournal(ctx, &journal, balanceChanges)
	if err != nil {
		s.LogError(ctx, err, "Failed to save journal", "society_id", societyID)
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	s.LogInfo(ctx, "Journal posted", "journal_id", saved.JournalID, "society_id", societyID,
		"voucher_number", saved.VoucherNumber, "amount", saved.Amount.String())
	return saved, nil
}

// GetJournalByID retrieves a journal with its lines.
func (s *journalService) GetJournalByID(ctx context.Context, societyID string, journalID string, userID string) (*domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, userID, societyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	journal, err := s.journalRepo.FindJournalByID(ctx, societyID, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal", "journal_id", journalID)
		}
		return nil, err
	}

	transactions, err := s.journalRepo.FindTransactionsByJournalID(ctx, journalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for journal", "journal_id", journalID)
		return nil, fmt.Errorf("failed to retrieve transactions for journal %s: %w", journalID, apperrors.ErrInternal)
	}
	for i := range transactions {
		transactions[i].JournalDate = journal.JournalDate
		transactions[i].JournalDescription = journal.Description
	}
	journal.Transactions = transactions

	return journal, nil
}

// ListJournals retrieves a paginated list of the society's journals.
func (s *journalService) ListJournals(ctx context.Context, societyID string, params dto.ListJournalsParams, userID string) ([]domain.Journal, *string, error) {
	if err := s.AuthorizeUser(ctx, userID, societyID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}

	journals, nextToken, err := s.journalRepo.ListJournalsBySociety(ctx, societyID, params.Limit, params.NextToken, params.IncludeReversals)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals", "society_id", societyID)
		return nil, nil, fmt.Errorf("failed to retrieve journals: %w", err)
	}

	if params.IncludeTransactions && len(journals) > 0 {
		journalIDs := make([]string, len(journals))
		for i, journal := range journals {
			journalIDs[i] = journal.JournalID
		}
		transactionsMap, err := s.journalRepo.FindTransactionsByJournalIDs(ctx, journalIDs)
		if err != nil {
			// Serve the headers without lines rather than failing the request
			s.LogError(ctx, err, "Failed to fetch transactions for journal list", "society_id", societyID)
		} else {
			for i := range journals {
				journals[i].Transactions = transactionsMap[journals[i].JournalID]
			}
		}
	}

	return journals, nextToken, nil
}

// ListTransactionsByAccount retrieves a paginated account statement.
func (s *journalService) ListTransactionsByAccount(ctx context.Context, societyID string, params dto.ListTransactionsParams, userID string) ([]domain.Transaction, *string, error) {
	if err := s.AuthorizeUser(ctx, userID, societyID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}

	transactions, nextToken, err := s.journalRepo.ListTransactionsByAccount(ctx, societyID, params.AccountID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions by account", "account_id", params.AccountID)
		return nil, nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	return transactions, nextToken, nil
}

// ReverseJournal posts a mirror-image journal that undoes a posted journal.
// The reversal carries the original's voucher type and consumes the next
// number in that series, and the pair is linked atomically. Reversing a
// reversal is allowed and restores the original's net effect.
func (s *journalService) ReverseJournal(ctx context.Context, societyID string, journalID string, userID string) (*domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, userID, societyID, domain.RoleMember); err != nil {
		return nil, err
	}

	original, err := s.journalRepo.FindJournalByID(ctx, societyID, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch journal for reversal", "journal_id", journalID)
		}
		return nil, err
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: journal status is %s, expected POSTED", apperrors.ErrConflict, original.Status)
	}

	originalTransactions, err := s.journalRepo.FindTransactionsByJournalID(ctx, journalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for reversal", "journal_id", journalID)
		return nil, fmt.Errorf("failed to retrieve original transactions: %w", err)
	}

	now := time.Now().UTC()
	reversalID := uuid.NewString()

	description := reversalDescriptionPrefix + original.Description
	if original.IsReversal() {
		// Undoing a reversal: restore the plain description
		description = strings.TrimPrefix(original.Description, reversalDescriptionPrefix)
	}

	reversingTransactions := make([]domain.Transaction, len(originalTransactions))
	accountIDs := make([]string, 0, len(originalTransactions))
	for i, origTx := range originalTransactions {
		accountIDs = append(accountIDs, origTx.AccountID)
		newTxType := domain.Credit
		if origTx.TransactionType == domain.Credit {
			newTxType = domain.Debit
		}
		reversingTransactions[i] = domain.Transaction{
			TransactionID:   uuid.NewString(),
			JournalID:       reversalID,
			AccountID:       origTx.AccountID,
			Amount:          origTx.Amount,
			TransactionType: newTxType,
			FlatID:          origTx.FlatID,
			Notes:           origTx.Notes,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, societyID, accountIDs, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for reversal", "journal_id", journalID)
		return nil, fmt.Errorf("failed to get account details for reversal: %w", err)
	}

	balanceChanges := make(map[string]decimal.Decimal)
	for _, revTx := range reversingTransactions {
		acc, ok := accountsMap[revTx.AccountID]
		if !ok {
			return nil, fmt.Errorf("internal error: account %s not found during balance calculation", revTx.AccountID)
		}
		signedAmount, err := accounting.CalculateSignedAmount(revTx, acc.AccountType)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate signed amount for reversal: %w", err)
		}
		balanceChanges[revTx.AccountID] = balanceChanges[revTx.AccountID].Add(signedAmount)
	}

	reversal := domain.Journal{
		JournalID:         reversalID,
		SocietyID:         societyID,
		JournalDate:       original.JournalDate,
		Description:       description,
		VoucherType:       original.VoucherType,
		Status:            domain.Posted,
		OriginalJournalID: &original.JournalID,
		Amount:            original.Amount,
		Transactions:      reversingTransactions,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	saved, err := s.journalRepo.SaveReversalJournal(ctx, &reversal, original.JournalID, balanceChanges)
	if err != nil {
		s.LogError(ctx, err, "Failed to save reversing journal", "original_journal_id", journalID)
		return nil, fmt.Errorf("failed to save reversing journal: %w", err)
	}

	s.LogInfo(ctx, "Journal reversed", "original_journal_id", journalID,
		"reversing_journal_id", saved.JournalID, "voucher_number", saved.VoucherNumber)
	return saved, nil
}
