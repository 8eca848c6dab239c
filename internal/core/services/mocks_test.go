package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	portsrepo "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/repositories"
	portssvc "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/services"
	"github.com/jayamurli1954/GharMitra-sub002/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock SocietyAuthorizer ---

type MockSocietyAuthorizer struct {
	mock.Mock
}

var _ portssvc.SocietyAuthorizerSvc = (*MockSocietyAuthorizer)(nil)

func (m *MockSocietyAuthorizer) AuthorizeUserAction(ctx context.Context, userID string, societyID string, requiredRole domain.SocietyRole) error {
	args := m.Called(ctx, userID, societyID, requiredRole)
	return args.Error(0)
}

// --- Mock SocietyRepository ---

type MockSocietyRepository struct {
	mock.Mock
}

var _ portsrepo.SocietyRepositoryFacade = (*MockSocietyRepository)(nil)

func (m *MockSocietyRepository) FindSocietyByID(ctx context.Context, societyID string) (*domain.Society, error) {
	args := m.Called(ctx, societyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Society), args.Error(1)
}

func (m *MockSocietyRepository) ListSocietiesByUser(ctx context.Context, userID string) ([]domain.Society, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Society), args.Error(1)
}

func (m *MockSocietyRepository) SaveSociety(ctx context.Context, society *domain.Society) error {
	args := m.Called(ctx, society)
	return args.Error(0)
}

func (m *MockSocietyRepository) UpdateSociety(ctx context.Context, society *domain.Society) error {
	args := m.Called(ctx, society)
	return args.Error(0)
}

func (m *MockSocietyRepository) FindMember(ctx context.Context, societyID string, userID string) (*domain.SocietyMember, error) {
	args := m.Called(ctx, societyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SocietyMember), args.Error(1)
}

func (m *MockSocietyRepository) ListMembers(ctx context.Context, societyID string) ([]domain.SocietyMember, error) {
	args := m.Called(ctx, societyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SocietyMember), args.Error(1)
}

func (m *MockSocietyRepository) AddMember(ctx context.Context, member *domain.SocietyMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockSocietyRepository) UpdateMemberRole(ctx context.Context, societyID string, userID string, role domain.SocietyRole) error {
	args := m.Called(ctx, societyID, userID, role)
	return args.Error(0)
}

func (m *MockSocietyRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockSocietyRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSocietyRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, societyID string, code string) (*domain.Account, error) {
	args := m.Called(ctx, societyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsBySociety(ctx context.Context, societyID string, accountType *domain.AccountType, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, societyID, accountType, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountCodes(ctx context.Context, societyID string) ([]string, error) {
	args := m.Called(ctx, societyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SetOpeningBalance(ctx context.Context, accountID string, openingBalance decimal.Decimal, balanceDelta decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, openingBalance, balanceDelta, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) HasPostedLines(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) RecalculateBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAccountRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAccountRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, societyID string, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, societyID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) ListJournalsBySociety(ctx context.Context, societyID string, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error) {
	args := m.Called(ctx, societyID, limit, nextToken, includeReversals)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Journal), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal *domain.Journal, balanceChanges map[string]decimal.Decimal) (*domain.Journal, error) {
	args := m.Called(ctx, journal, balanceChanges)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) MarkJournalReversed(ctx context.Context, tx pgx.Tx, originalJournalID string, reversingJournalID string, userID string, now time.Time) error {
	args := m.Called(ctx, tx, originalJournalID, reversingJournalID, userID, now)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveReversalJournal(ctx context.Context, reversal *domain.Journal, originalJournalID string, balanceChanges map[string]decimal.Decimal) (*domain.Journal, error) {
	args := m.Called(ctx, reversal, originalJournalID, balanceChanges)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockJournalRepository) FindTransactionsByJournalIDs(ctx context.Context, journalIDs []string) (map[string][]domain.Transaction, error) {
	args := m.Called(ctx, journalIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.Transaction), args.Error(1)
}

func (m *MockJournalRepository) ListTransactionsByAccount(ctx context.Context, societyID string, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, societyID, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) NextVoucherNumber(ctx context.Context, tx pgx.Tx, societyID string, voucherType domain.VoucherType) (int64, error) {
	args := m.Called(ctx, tx, societyID, voucherType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) GetSequence(ctx context.Context, societyID string, voucherType domain.VoucherType) (*domain.VoucherSequence, error) {
	args := m.Called(ctx, societyID, voucherType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherSequence), args.Error(1)
}

func (m *MockJournalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockJournalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockJournalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ReconciliationRepository ---

type MockReconciliationRepository struct {
	mock.Mock
}

var _ portsrepo.ReconciliationRepositoryFacade = (*MockReconciliationRepository)(nil)

func (m *MockReconciliationRepository) GetBalancesByType(ctx context.Context, societyID string) (map[domain.AccountType]decimal.Decimal, error) {
	args := m.Called(ctx, societyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AccountType]decimal.Decimal), args.Error(1)
}

func (m *MockReconciliationRepository) GetFlatDues(ctx context.Context, societyID string, controlAccountID string) ([]domain.FlatDues, error) {
	args := m.Called(ctx, societyID, controlAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlatDues), args.Error(1)
}

func (m *MockReconciliationRepository) GetUntaggedDuesTotal(ctx context.Context, societyID string, controlAccountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, societyID, controlAccountID)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccountByID(ctx context.Context, societyID string, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, societyID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByCode(ctx context.Context, societyID string, code string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, societyID, code, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, societyID string, accountIDs []string, userID string) (map[string]domain.Account, error) {
	args := m.Called(ctx, societyID, accountIDs, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, societyID string, params dto.ListAccountsParams, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, societyID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CalculateAccountBalance(ctx context.Context, societyID string, accountID string, userID string) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, societyID, accountID, userID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, societyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, societyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, societyID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, societyID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) InitializeDefaultChart(ctx context.Context, societyID string, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, societyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) SetOpeningBalance(ctx context.Context, societyID string, accountID string, req dto.SetOpeningBalanceRequest, userID string) (*domain.Account, *domain.BalanceSheetValidation, error) {
	args := m.Called(ctx, societyID, accountID, req, userID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	var validation *domain.BalanceSheetValidation
	if args.Get(1) != nil {
		validation = args.Get(1).(*domain.BalanceSheetValidation)
	}
	return account, validation, args.Error(2)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, societyID string, accountID string, userID string) error {
	args := m.Called(ctx, societyID, accountID, userID)
	return args.Error(0)
}

// --- Mock JournalService ---

type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) GetJournalByID(ctx context.Context, societyID string, journalID string, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, societyID, journalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalService) ListJournals(ctx context.Context, societyID string, params dto.ListJournalsParams, userID string) ([]domain.Journal, *string, error) {
	args := m.Called(ctx, societyID, params, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Journal), returnedNextToken, args.Error(2)
}

func (m *MockJournalService) ListTransactionsByAccount(ctx context.Context, societyID string, params dto.ListTransactionsParams, userID string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, societyID, params, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockJournalService) CreateJournal(ctx context.Context, societyID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, societyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalService) ReverseJournal(ctx context.Context, societyID string, journalID string, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, societyID, journalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

// --- Mock ReconciliationService ---

type MockReconciliationService struct {
	mock.Mock
}

var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)

func (m *MockReconciliationService) ValidateBalanceSheet(ctx context.Context, societyID string, userID string) (*domain.BalanceSheetValidation, error) {
	args := m.Called(ctx, societyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetValidation), args.Error(1)
}

func (m *MockReconciliationService) MemberDuesReport(ctx context.Context, societyID string, userID string) ([]domain.FlatDues, error) {
	args := m.Called(ctx, societyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlatDues), args.Error(1)
}

func (m *MockReconciliationService) ReconcileDuesAgainstGL(ctx context.Context, societyID string, userID string) (*domain.DuesReconciliation, error) {
	args := m.Called(ctx, societyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuesReconciliation), args.Error(1)
}
