package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jayamurli1954/GharMitra-sub002/internal/apperrors"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	portssvc "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/services"
	"github.com/jayamurli1954/GharMitra-sub002/internal/dto"
	"github.com/shopspring/decimal"
)

var (
	ErrKindAccountMismatch = errors.New("account type does not match transaction kind")
	ErrUnknownPayMethod    = errors.New("unknown payment method")
)

// transactionService translates simplified single-entry submissions into
// balanced two-line journals. Committee members think in "money in" and
// "money out"; the double entry is derived here, not by the user.
type transactionService struct {
	BaseService
	accountSvc portssvc.AccountSvcFacade
	journalSvc portssvc.JournalSvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(accountSvc portssvc.AccountSvcFacade, journalSvc portssvc.JournalSvcFacade, societySvc portssvc.SocietyAuthorizerSvc) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService: BaseService{SocietyAuthorizer: societySvc},
		accountSvc:  accountSvc,
		journalSvc:  journalSvc,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func controlAccountCode(method dto.PaymentMethod) (string, error) {
	switch method {
	case dto.PaymentCash:
		return domain.CodeCash, nil
	case dto.PaymentBank:
		return domain.CodeBank, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPayMethod, method)
	}
}

// PostTransaction builds and posts the two-line journal implied by the
// request: income debits the cash or bank control account and credits the
// named income account as a RECEIPT; expense debits the named expense account
// and credits the control account as a PAYMENT.
func (s *transactionService) PostTransaction(ctx context.Context, societyID string, req dto.PostTransactionRequest, userID string) (*domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, userID, societyID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	controlCode, err := controlAccountCode(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	target, err := s.accountSvc.GetAccountByCode(ctx, societyID, req.AccountCode, userID)
	if err != nil {
		return nil, err
	}
	control, err := s.accountSvc.GetAccountByCode(ctx, societyID, controlCode, userID)
	if err != nil {
		return nil, err
	}

	var lines []dto.CreateJournalLineRequest
	var voucherType domain.VoucherType

	switch req.Kind {
	case dto.SimpleIncome:
		if target.AccountType != domain.Income {
			return nil, fmt.Errorf("%w: account %s is %s, expected INCOME", ErrKindAccountMismatch, target.Code, target.AccountType)
		}
		voucherType = domain.Receipt
		lines = []dto.CreateJournalLineRequest{
			{AccountID: control.AccountID, DebitAmount: req.Amount, FlatID: req.FlatID},
			{AccountID: target.AccountID, CreditAmount: req.Amount, FlatID: req.FlatID},
		}

	case dto.SimpleExpense:
		if target.AccountType != domain.Expense {
			return nil, fmt.Errorf("%w: account %s is %s, expected EXPENSE", ErrKindAccountMismatch, target.Code, target.AccountType)
		}
		// A cash payment cannot overdraw the cash box unless explicitly
		// allowed. Bank payments are not pre-checked: overdrafts are the
		// bank's business, not ours.
		if req.PaymentMethod == dto.PaymentCash && !req.AllowNegativeBalance && control.Balance.LessThan(req.Amount) {
			return nil, &apperrors.InsufficientBalanceError{
				AccountCode: control.Code,
				Available:   control.Balance,
				Required:    req.Amount,
			}
		}
		voucherType = domain.Payment
		lines = []dto.CreateJournalLineRequest{
			{AccountID: target.AccountID, DebitAmount: req.Amount, FlatID: req.FlatID},
			{AccountID: control.AccountID, CreditAmount: req.Amount, FlatID: req.FlatID},
		}

	default:
		return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, req.Kind)
	}

	journalReq := dto.CreateJournalRequest{
		JournalDate: req.Date,
		Description: req.Description,
		VoucherType: voucherType,
		Lines:       lines,
	}

	journal, err := s.journalSvc.CreateJournal(ctx, societyID, journalReq, userID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Simplified transaction posted", "journal_id", journal.JournalID,
		"kind", string(req.Kind), "voucher_number", journal.VoucherNumber)
	return journal, nil
}
