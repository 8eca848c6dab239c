package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jayamurli1954/GharMitra-sub002/internal/apperrors"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	portsrepo "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/repositories"
	portssvc "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/services"
	"github.com/jayamurli1954/GharMitra-sub002/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// untaggedFlatID labels the portion of the control account carried by lines
// without a flat tag in the dues report.
const untaggedFlatID = "UNTAGGED"

// reconciliationService runs ledger integrity checks for a society.
type reconciliationService struct {
	BaseService
	reconciliationRepo portsrepo.ReconciliationRepositoryFacade
	accountRepo        portsrepo.AccountRepositoryFacade
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(reconciliationRepo portsrepo.ReconciliationRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, societySvc portssvc.SocietyAuthorizerSvc) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		BaseService:        BaseService{SocietyAuthorizer: societySvc},
		reconciliationRepo: reconciliationRepo,
		accountRepo:        accountRepo,
	}
}

// Ensure reconciliationService implements the portssvc.ReconciliationSvcFacade interface
var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// ValidateBalanceSheet checks the accounting equation across the ledger:
// assets = liabilities + equity, where equity carries the retained surplus
// (income less expense) of the period. Every posted journal is balanced by
// construction, so an imbalance can only come from opening balances; the
// suggested correction targets the corpus fund.
func (s *reconciliationService) ValidateBalanceSheet(ctx context.Context, societyID string, userID string) (*domain.BalanceSheetValidation, error) {
	if err := s.AuthorizeUser(ctx, userID, societyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	totals, err := s.reconciliationRepo.GetBalancesByType(ctx, societyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate balances by type", "society_id", societyID)
		return nil, fmt.Errorf("failed to aggregate balances: %w", err)
	}

	assets := totals[domain.Asset]
	liabilities := totals[domain.Liability]
	equity := totals[domain.Equity]
	income := totals[domain.Income]
	expense := totals[domain.Expense]

	surplus := income.Sub(expense)
	effectiveEquity := equity.Add(surplus)
	difference := assets.Sub(liabilities.Add(effectiveEquity))
	isBalanced := difference.Abs().LessThanOrEqual(accounting.BalanceTolerance)

	validation := &domain.BalanceSheetValidation{
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		TotalEquity:      equity,
		TotalIncome:      income,
		TotalExpense:     expense,
		Difference:       difference,
		IsBalanced:       isBalanced,
	}
	if !isBalanced {
		// Crediting (or debiting) the corpus fund by the difference restores
		// the equation.
		validation.SuggestedCorrection = difference
		validation.SuggestedAccountCode = domain.CodeCorpusFund
		s.LogInfo(ctx, "Balance sheet out of balance", "society_id", societyID, "difference", difference.String())
	}

	return validation, nil
}

// duesControlAccount resolves the member dues receivable control account.
func (s *reconciliationService) duesControlAccount(ctx context.Context, societyID string) (*domain.Account, error) {
	control, err := s.accountRepo.FindAccountByCode(ctx, societyID, domain.CodeDuesReceivable)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: dues control account %s not present in chart", apperrors.ErrNotFound, domain.CodeDuesReceivable)
		}
		return nil, fmt.Errorf("failed to resolve dues control account: %w", err)
	}
	return control, nil
}

// MemberDuesReport returns per-flat outstanding dues on the receivable
// control account. Lines without a flat tag are rolled into a single
// UNTAGGED entry when they net to a non-zero amount.
func (s *reconciliationService) MemberDuesReport(ctx context.Context, societyID string, userID string) ([]domain.FlatDues, error) {
	if err := s.AuthorizeUser(ctx, userID, societyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	control, err := s.duesControlAccount(ctx, societyID)
	if err != nil {
		return nil, err
	}

	dues, err := s.reconciliationRepo.GetFlatDues(ctx, societyID, control.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch flat dues", "society_id", societyID)
		return nil, fmt.Errorf("failed to fetch flat dues: %w", err)
	}

	untagged, err := s.reconciliationRepo.GetUntaggedDuesTotal(ctx, societyID, control.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch untagged dues total", "society_id", societyID)
		return nil, fmt.Errorf("failed to fetch untagged dues: %w", err)
	}
	if !untagged.IsZero() {
		dues = append(dues, domain.FlatDues{FlatID: untaggedFlatID, Outstanding: untagged})
	}

	return dues, nil
}

// ReconcileDuesAgainstGL compares the sum of per-flat dues with the control
// account balance. A difference beyond tolerance usually means an opening
// balance on the control account that no flat-tagged lines explain.
func (s *reconciliationService) ReconcileDuesAgainstGL(ctx context.Context, societyID string, userID string) (*domain.DuesReconciliation, error) {
	if err := s.AuthorizeUser(ctx, userID, societyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	control, err := s.duesControlAccount(ctx, societyID)
	if err != nil {
		return nil, err
	}

	flats, err := s.MemberDuesReport(ctx, societyID, userID)
	if err != nil {
		return nil, err
	}

	duesTotal := decimal.Zero
	for _, f := range flats {
		duesTotal = duesTotal.Add(f.Outstanding)
	}

	difference := control.Balance.Sub(duesTotal)
	isReconciled := difference.Abs().LessThanOrEqual(accounting.BalanceTolerance)
	if !isReconciled {
		s.LogInfo(ctx, "Dues ledger does not reconcile with control account",
			"society_id", societyID, "control_balance", control.Balance.String(), "dues_total", duesTotal.String())
	}

	return &domain.DuesReconciliation{
		ControlAccountCode: control.Code,
		ControlBalance:     control.Balance,
		DuesTotal:          duesTotal,
		Difference:         difference,
		IsReconciled:       isReconciled,
		Flats:              flats,
	}, nil
}
