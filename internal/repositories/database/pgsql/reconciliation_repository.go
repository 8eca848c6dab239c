package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	portsrepo "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reconciliationRepository implements the ReconciliationRepositoryFacade interface
type reconciliationRepository struct {
	BaseRepository
}

// newReconciliationRepository creates a new reconciliation repository
func newReconciliationRepository(db *pgxpool.Pool) portsrepo.ReconciliationRepositoryFacade {
	return &reconciliationRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetBalancesByType returns the summed current balance per account type for a
// society. Stored balances already carry the account's natural sign, so a
// straight SUM per type is sufficient. Deactivated accounts are included:
// deactivation only blocks new postings, the balance is still ledger state.
func (r *reconciliationRepository) GetBalancesByType(ctx context.Context, societyID string) (map[domain.AccountType]decimal.Decimal, error) {
	query := `
		SELECT account_type, SUM(balance)
		FROM accounts
		WHERE society_id = $1
		GROUP BY account_type;
	`
	rows, err := r.Pool.Query(ctx, query, societyID)
	if err != nil {
		return nil, fmt.Errorf("error querying balances by type for society %s: %w", societyID, err)
	}
	defer rows.Close()

	totals := map[domain.AccountType]decimal.Decimal{
		domain.Asset:     decimal.Zero,
		domain.Liability: decimal.Zero,
		domain.Equity:    decimal.Zero,
		domain.Income:    decimal.Zero,
		domain.Expense:   decimal.Zero,
	}
	for rows.Next() {
		var accountType string
		var total decimal.Decimal
		if err := rows.Scan(&accountType, &total); err != nil {
			return nil, fmt.Errorf("error scanning balance-by-type row: %w", err)
		}
		totals[domain.AccountType(accountType)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance-by-type rows: %w", err)
	}

	return totals, nil
}

// GetFlatDues returns per-flat outstanding amounts on the receivable control
// account, derived from flat-tagged lines. A debit raises what the flat owes,
// a credit settles it. Flats that net to zero are filtered out in SQL.
func (r *reconciliationRepository) GetFlatDues(ctx context.Context, societyID string, controlAccountID string) ([]domain.FlatDues, error) {
	query := `
		SELECT
			t.flat_id,
			SUM(CASE WHEN t.transaction_type = 'DEBIT' THEN t.amount ELSE -t.amount END) AS outstanding
		FROM transactions t
		JOIN journals j ON t.journal_id = j.journal_id
		WHERE j.society_id = $1
			AND t.account_id = $2
			AND t.flat_id IS NOT NULL
		GROUP BY t.flat_id
		HAVING SUM(CASE WHEN t.transaction_type = 'DEBIT' THEN t.amount ELSE -t.amount END) != 0
		ORDER BY t.flat_id;
	`
	rows, err := r.Pool.Query(ctx, query, societyID, controlAccountID)
	if err != nil {
		return nil, fmt.Errorf("error querying flat dues for society %s: %w", societyID, err)
	}
	defer rows.Close()

	dues := []domain.FlatDues{}
	for rows.Next() {
		var d domain.FlatDues
		if err := rows.Scan(&d.FlatID, &d.Outstanding); err != nil {
			return nil, fmt.Errorf("error scanning flat dues row: %w", err)
		}
		dues = append(dues, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating flat dues rows: %w", err)
	}

	return dues, nil
}

// GetUntaggedDuesTotal returns the net effect of lines on the control account
// that carry no flat tag. A non-zero value explains any gap between the
// per-flat dues total and the control account balance.
func (r *reconciliationRepository) GetUntaggedDuesTotal(ctx context.Context, societyID string, controlAccountID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN t.transaction_type = 'DEBIT' THEN t.amount ELSE -t.amount END), 0)
		FROM transactions t
		JOIN journals j ON t.journal_id = j.journal_id
		WHERE j.society_id = $1
			AND t.account_id = $2
			AND t.flat_id IS NULL;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, societyID, controlAccountID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error querying untagged dues total for society %s: %w", societyID, err)
	}
	return total, nil
}
