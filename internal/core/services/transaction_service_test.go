package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jayamurli1954/GharMitra-sub002/internal/apperrors"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	portssvc "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/services"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/services"
	"github.com/jayamurli1954/GharMitra-sub002/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockAccountSvc *MockAccountService
	mockJournalSvc *MockJournalService
	mockAuthorizer *MockSocietyAuthorizer
	service        portssvc.TransactionSvcFacade
	societyID      string
	userID         string
	cashAccount    domain.Account
	bankAccount    domain.Account
	incomeAccount  domain.Account
	expenseAccount domain.Account
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockJournalSvc = new(MockJournalService)
	suite.mockAuthorizer = new(MockSocietyAuthorizer)
	suite.service = services.NewTransactionService(suite.mockAccountSvc, suite.mockJournalSvc, suite.mockAuthorizer)

	suite.societyID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		SocietyID:   suite.societyID,
		Code:        domain.CodeCash,
		AccountType: domain.Asset,
		IsActive:    true,
		Balance:     decimal.NewFromInt(5000),
	}
	suite.bankAccount = domain.Account{
		AccountID:   uuid.NewString(),
		SocietyID:   suite.societyID,
		Code:        domain.CodeBank,
		AccountType: domain.Asset,
		IsActive:    true,
		Balance:     decimal.NewFromInt(50000),
	}
	suite.incomeAccount = domain.Account{
		AccountID:   uuid.NewString(),
		SocietyID:   suite.societyID,
		Code:        "4001",
		AccountType: domain.Income,
		IsActive:    true,
	}
	suite.expenseAccount = domain.Account{
		AccountID:   uuid.NewString(),
		SocietyID:   suite.societyID,
		Code:        "5010",
		AccountType: domain.Expense,
		IsActive:    true,
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.societyID, domain.RoleMember).
		Return(nil).Maybe()
}

func (suite *TransactionServiceTestSuite) expectAccountByCode(account domain.Account) {
	acc := account
	suite.mockAccountSvc.On("GetAccountByCode", mock.Anything, suite.societyID, acc.Code, suite.userID).
		Return(&acc, nil).Once()
}

func (suite *TransactionServiceTestSuite) TestPostTransaction_IncomeCash() {
	ctx := context.Background()
	flatID := "A-101"
	req := dto.PostTransactionRequest{
		Kind:          dto.SimpleIncome,
		AccountCode:   "4001",
		Amount:        decimal.NewFromInt(1500),
		Date:          time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Description:   "Maintenance for April, flat A-101",
		PaymentMethod: dto.PaymentCash,
		FlatID:        &flatID,
	}

	suite.expectAccountByCode(suite.incomeAccount)
	suite.expectAccountByCode(suite.cashAccount)

	suite.mockJournalSvc.On("CreateJournal", mock.Anything, suite.societyID,
		mock.MatchedBy(func(journalReq dto.CreateJournalRequest) bool {
			if journalReq.VoucherType != domain.Receipt || len(journalReq.Lines) != 2 {
				return false
			}
			debit, credit := journalReq.Lines[0], journalReq.Lines[1]
			return debit.AccountID == suite.cashAccount.AccountID &&
				debit.DebitAmount.Equal(decimal.NewFromInt(1500)) &&
				credit.AccountID == suite.incomeAccount.AccountID &&
				credit.CreditAmount.Equal(decimal.NewFromInt(1500)) &&
				debit.FlatID != nil && *debit.FlatID == flatID &&
				credit.FlatID != nil && *credit.FlatID == flatID
		}), suite.userID).
		Return(&domain.Journal{JournalID: uuid.NewString(), VoucherNumber: "RV-0005"}, nil).Once()

	journal, err := suite.service.PostTransaction(ctx, suite.societyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("RV-0005", journal.VoucherNumber)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestPostTransaction_ExpenseBank() {
	ctx := context.Background()
	// Exceeds the bank balance of 50000. Bank payments post regardless:
	// only cash is guarded against overdrawing.
	req := dto.PostTransactionRequest{
		Kind:          dto.SimpleExpense,
		AccountCode:   "5010",
		Amount:        decimal.NewFromInt(60000),
		Date:          time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		Description:   "Lift repair",
		PaymentMethod: dto.PaymentBank,
	}

	suite.expectAccountByCode(suite.expenseAccount)
	suite.expectAccountByCode(suite.bankAccount)

	suite.mockJournalSvc.On("CreateJournal", mock.Anything, suite.societyID,
		mock.MatchedBy(func(journalReq dto.CreateJournalRequest) bool {
			if journalReq.VoucherType != domain.Payment || len(journalReq.Lines) != 2 {
				return false
			}
			debit, credit := journalReq.Lines[0], journalReq.Lines[1]
			return debit.AccountID == suite.expenseAccount.AccountID &&
				debit.DebitAmount.Equal(decimal.NewFromInt(60000)) &&
				credit.AccountID == suite.bankAccount.AccountID &&
				credit.CreditAmount.Equal(decimal.NewFromInt(60000))
		}), suite.userID).
		Return(&domain.Journal{JournalID: uuid.NewString(), VoucherNumber: "PV-0003"}, nil).Once()

	journal, err := suite.service.PostTransaction(ctx, suite.societyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("PV-0003", journal.VoucherNumber)
}

func (suite *TransactionServiceTestSuite) TestPostTransaction_InsufficientBalance() {
	ctx := context.Background()
	req := dto.PostTransactionRequest{
		Kind:          dto.SimpleExpense,
		AccountCode:   "5010",
		Amount:        decimal.NewFromInt(9000),
		Date:          time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		Description:   "Painting contract",
		PaymentMethod: dto.PaymentCash,
	}

	suite.expectAccountByCode(suite.expenseAccount)
	suite.expectAccountByCode(suite.cashAccount)

	_, err := suite.service.PostTransaction(ctx, suite.societyID, req, suite.userID)

	suite.Require().Error(err)
	var insufficient *apperrors.InsufficientBalanceError
	suite.Require().ErrorAs(err, &insufficient)
	suite.Equal(domain.CodeCash, insufficient.AccountCode)
	suite.True(insufficient.Available.Equal(decimal.NewFromInt(5000)))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "CreateJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestPostTransaction_OverdraftAllowed() {
	ctx := context.Background()
	req := dto.PostTransactionRequest{
		Kind:                 dto.SimpleExpense,
		AccountCode:          "5010",
		Amount:               decimal.NewFromInt(9000),
		Date:                 time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		Description:          "Painting contract",
		PaymentMethod:        dto.PaymentCash,
		AllowNegativeBalance: true,
	}

	suite.expectAccountByCode(suite.expenseAccount)
	suite.expectAccountByCode(suite.cashAccount)
	suite.mockJournalSvc.On("CreateJournal", mock.Anything, suite.societyID, mock.Anything, suite.userID).
		Return(&domain.Journal{VoucherNumber: "PV-0004"}, nil).Once()

	_, err := suite.service.PostTransaction(ctx, suite.societyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestPostTransaction_KindAccountMismatch() {
	ctx := context.Background()
	req := dto.PostTransactionRequest{
		Kind:          dto.SimpleIncome,
		AccountCode:   "5010",
		Amount:        decimal.NewFromInt(100),
		Date:          time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		Description:   "Mistagged entry",
		PaymentMethod: dto.PaymentCash,
	}

	suite.expectAccountByCode(suite.expenseAccount)
	suite.expectAccountByCode(suite.cashAccount)

	_, err := suite.service.PostTransaction(ctx, suite.societyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrKindAccountMismatch)
}

func (suite *TransactionServiceTestSuite) TestPostTransaction_UnknownPaymentMethod() {
	ctx := context.Background()
	req := dto.PostTransactionRequest{
		Kind:          dto.SimpleIncome,
		AccountCode:   "4001",
		Amount:        decimal.NewFromInt(100),
		Date:          time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		Description:   "UPI receipt",
		PaymentMethod: dto.PaymentMethod("UPI"),
	}

	_, err := suite.service.PostTransaction(ctx, suite.societyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUnknownPayMethod)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "GetAccountByCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestPostTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.PostTransactionRequest{
		Kind:          dto.SimpleIncome,
		AccountCode:   "4001",
		Amount:        decimal.Zero,
		Date:          time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		Description:   "Zero amount",
		PaymentMethod: dto.PaymentCash,
	}

	_, err := suite.service.PostTransaction(ctx, suite.societyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
