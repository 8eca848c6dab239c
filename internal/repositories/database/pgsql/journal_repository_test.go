package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/jayamurli1954/GharMitra-sub002/internal/apperrors"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
)

// JournalRepositoryTestSuite exercises the voucher sequencer against a mock
// pool, pinning the SQL contract: the upsert-returning increment, reading
// counter state, and the unique-constraint safety net behind it.
type JournalRepositoryTestSuite struct {
	suite.Suite
	mockPool  pgxmock.PgxPoolIface
	repo      *PgxJournalRepository
	societyID string
	userID    string
}

func (suite *JournalRepositoryTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.mockPool = pool
	suite.repo = &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
	suite.societyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *JournalRepositoryTestSuite) TearDownTest() {
	suite.NoError(suite.mockPool.ExpectationsWereMet())
	suite.mockPool.Close()
}

func (suite *JournalRepositoryTestSuite) TestNextVoucherNumber_AssignsConsecutiveNumbers() {
	ctx := context.Background()

	suite.mockPool.ExpectBegin()
	suite.mockPool.ExpectQuery(`INSERT INTO voucher_sequences`).
		WithArgs(suite.societyID, string(domain.Receipt), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"last_number"}).AddRow(int64(1)))
	suite.mockPool.ExpectQuery(`INSERT INTO voucher_sequences`).
		WithArgs(suite.societyID, string(domain.Receipt), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"last_number"}).AddRow(int64(2)))

	tx, err := suite.mockPool.Begin(ctx)
	suite.Require().NoError(err)

	first, err := suite.repo.NextVoucherNumber(ctx, tx, suite.societyID, domain.Receipt)
	suite.Require().NoError(err)
	second, err := suite.repo.NextVoucherNumber(ctx, tx, suite.societyID, domain.Receipt)
	suite.Require().NoError(err)

	suite.Equal(int64(1), first)
	suite.Equal(int64(2), second)
}

func (suite *JournalRepositoryTestSuite) TestNextVoucherNumber_QueryErrorIsWrapped() {
	ctx := context.Background()

	suite.mockPool.ExpectBegin()
	suite.mockPool.ExpectQuery(`INSERT INTO voucher_sequences`).
		WithArgs(suite.societyID, string(domain.Payment), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	tx, err := suite.mockPool.Begin(ctx)
	suite.Require().NoError(err)

	_, err = suite.repo.NextVoucherNumber(ctx, tx, suite.societyID, domain.Payment)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "voucher sequence")
}

func (suite *JournalRepositoryTestSuite) TestGetSequence_ReturnsCounterState() {
	updatedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	suite.mockPool.ExpectQuery(`SELECT society_id, voucher_type, last_number, updated_at`).
		WithArgs(suite.societyID, string(domain.Payment)).
		WillReturnRows(pgxmock.NewRows([]string{"society_id", "voucher_type", "last_number", "updated_at"}).
			AddRow(suite.societyID, string(domain.Payment), int64(41), updatedAt))

	seq, err := suite.repo.GetSequence(context.Background(), suite.societyID, domain.Payment)

	suite.Require().NoError(err)
	suite.Require().NotNil(seq)
	suite.Equal(suite.societyID, seq.SocietyID)
	suite.Equal(domain.Payment, seq.VoucherType)
	suite.Equal(int64(41), seq.LastNumber)
	suite.Equal(updatedAt, seq.UpdatedAt)
}

func (suite *JournalRepositoryTestSuite) TestGetSequence_UnusedTypeReturnsNil() {
	suite.mockPool.ExpectQuery(`SELECT society_id, voucher_type, last_number, updated_at`).
		WithArgs(suite.societyID, string(domain.JournalVoucher)).
		WillReturnError(pgx.ErrNoRows)

	seq, err := suite.repo.GetSequence(context.Background(), suite.societyID, domain.JournalVoucher)

	suite.Require().NoError(err)
	suite.Nil(seq)
}

func (suite *JournalRepositoryTestSuite) newJournal(voucherType domain.VoucherType) *domain.Journal {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Journal{
		JournalID:   uuid.NewString(),
		SocietyID:   suite.societyID,
		JournalDate: now,
		Description: "Maintenance receipts",
		VoucherType: voucherType,
		Status:      domain.Posted,
		Amount:      decimal.NewFromInt(1500),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     suite.userID,
			LastUpdatedAt: now,
			LastUpdatedBy: suite.userID,
		},
	}
}

func (suite *JournalRepositoryTestSuite) TestSaveJournal_DuplicateVoucherNumberIsSequenceCollision() {
	journal := suite.newJournal(domain.Receipt)

	suite.mockPool.ExpectBegin()
	suite.mockPool.ExpectQuery(`INSERT INTO voucher_sequences`).
		WithArgs(suite.societyID, string(domain.Receipt), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"last_number"}).AddRow(int64(7)))
	suite.mockPool.ExpectExec(`INSERT INTO journals`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "journals_society_voucher_number_unique"})
	suite.mockPool.ExpectRollback()

	_, err := suite.repo.SaveJournal(context.Background(), journal, map[string]decimal.Decimal{})

	suite.Require().Error(err)
	var collision *apperrors.SequenceCollisionError
	suite.Require().ErrorAs(err, &collision)
	suite.Equal(suite.societyID, collision.SocietyID)
	suite.Equal("RV-0007", collision.VoucherNumber)
	suite.ErrorIs(err, apperrors.ErrInternal)
}

func (suite *JournalRepositoryTestSuite) TestSaveJournal_OtherDuplicateKeyIsNotCollision() {
	journal := suite.newJournal(domain.Payment)

	suite.mockPool.ExpectBegin()
	suite.mockPool.ExpectQuery(`INSERT INTO voucher_sequences`).
		WithArgs(suite.societyID, string(domain.Payment), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"last_number"}).AddRow(int64(3)))
	suite.mockPool.ExpectExec(`INSERT INTO journals`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "journals_pkey"})
	suite.mockPool.ExpectRollback()

	_, err := suite.repo.SaveJournal(context.Background(), journal, map[string]decimal.Decimal{})

	suite.Require().Error(err)
	var collision *apperrors.SequenceCollisionError
	suite.False(errors.As(err, &collision))
}

func TestJournalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(JournalRepositoryTestSuite))
}
