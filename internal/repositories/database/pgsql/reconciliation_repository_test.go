package pgsql

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
)

type ReconciliationRepositoryTestSuite struct {
	suite.Suite
	mockPool  pgxmock.PgxPoolIface
	repo      *reconciliationRepository
	societyID string
}

func (suite *ReconciliationRepositoryTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.mockPool = pool
	suite.repo = &reconciliationRepository{BaseRepository: BaseRepository{Pool: pool}}
	suite.societyID = uuid.NewString()
}

func (suite *ReconciliationRepositoryTestSuite) TearDownTest() {
	suite.NoError(suite.mockPool.ExpectationsWereMet())
	suite.mockPool.Close()
}

// The expected SQL pins the WHERE clause to the society filter alone. A
// deactivated account keeps its balance on the books, so filtering on
// is_active here would make the balance sheet report a phantom imbalance.
func (suite *ReconciliationRepositoryTestSuite) TestGetBalancesByType_SumsRegardlessOfActiveFlag() {
	suite.mockPool.ExpectQuery(`SELECT account_type, SUM\(balance\)\s+FROM accounts\s+WHERE society_id = \$1\s+GROUP BY account_type`).
		WithArgs(suite.societyID).
		WillReturnRows(pgxmock.NewRows([]string{"account_type", "sum"}).
			AddRow(string(domain.Asset), decimal.NewFromInt(95000)).
			AddRow(string(domain.Income), decimal.NewFromInt(95000)))

	totals, err := suite.repo.GetBalancesByType(context.Background(), suite.societyID)

	suite.Require().NoError(err)
	suite.True(totals[domain.Asset].Equal(decimal.NewFromInt(95000)))
	suite.True(totals[domain.Income].Equal(decimal.NewFromInt(95000)))
	// Types without accounts still come back as zero entries.
	suite.True(totals[domain.Liability].IsZero())
	suite.True(totals[domain.Equity].IsZero())
	suite.True(totals[domain.Expense].IsZero())
}

func (suite *ReconciliationRepositoryTestSuite) TestGetFlatDues_ScopesToControlAccount() {
	controlAccountID := uuid.NewString()

	suite.mockPool.ExpectQuery(`FROM transactions t\s+JOIN journals j`).
		WithArgs(suite.societyID, controlAccountID).
		WillReturnRows(pgxmock.NewRows([]string{"flat_id", "outstanding"}).
			AddRow("A-101", decimal.NewFromInt(2500)).
			AddRow("B-204", decimal.NewFromInt(-500)))

	dues, err := suite.repo.GetFlatDues(context.Background(), suite.societyID, controlAccountID)

	suite.Require().NoError(err)
	suite.Require().Len(dues, 2)
	suite.Equal("A-101", dues[0].FlatID)
	suite.True(dues[0].Outstanding.Equal(decimal.NewFromInt(2500)))
	suite.Equal("B-204", dues[1].FlatID)
	suite.True(dues[1].Outstanding.Equal(decimal.NewFromInt(-500)))
}

func TestReconciliationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationRepositoryTestSuite))
}
