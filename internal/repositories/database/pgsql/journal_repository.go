package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jayamurli1954/GharMitra-sub002/internal/apperrors"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	portsrepo "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/repositories"
	"github.com/jayamurli1954/GharMitra-sub002/internal/models"
	"github.com/jayamurli1954/GharMitra-sub002/internal/utils/accounting"
	"github.com/jayamurli1954/GharMitra-sub002/internal/utils/mapping"
	"github.com/jayamurli1954/GharMitra-sub002/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const journalColumns = `journal_id, society_id, journal_date, description, voucher_type, voucher_number, sequence_number, status, original_journal_id, reversing_journal_id, amount, created_at, created_by, last_updated_at, last_updated_by`

const transactionColumns = `transaction_id, journal_id, account_id, amount, transaction_type, flat_id, notes, running_balance, created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxJournalRepository creates a new repository for journal and transaction data.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// NextVoucherNumber atomically increments the per-type counter for a society
// and returns the new value. The upsert runs in the caller's transaction, so
// the increment only survives if the journal insert commits: failed postings
// never consume a number, and the series stays gapless.
func (r *PgxJournalRepository) NextVoucherNumber(ctx context.Context, tx pgx.Tx, societyID string, voucherType domain.VoucherType) (int64, error) {
	query := `
		INSERT INTO voucher_sequences (society_id, voucher_type, last_number, updated_at)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (society_id, voucher_type)
		DO UPDATE SET last_number = voucher_sequences.last_number + 1, updated_at = $3
		RETURNING last_number;
	`
	var seq int64
	if err := tx.QueryRow(ctx, query, societyID, string(voucherType), time.Now().UTC()).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to advance voucher sequence for society %s type %s: %w", societyID, voucherType, err)
	}
	return seq, nil
}

// GetSequence returns the current counter state, or nil if the society has
// not posted that voucher type yet.
func (r *PgxJournalRepository) GetSequence(ctx context.Context, societyID string, voucherType domain.VoucherType) (*domain.VoucherSequence, error) {
	query := `
		SELECT society_id, voucher_type, last_number, updated_at
		FROM voucher_sequences
		WHERE society_id = $1 AND voucher_type = $2;
	`
	var s domain.VoucherSequence
	var vt string
	err := r.Pool.QueryRow(ctx, query, societyID, string(voucherType)).Scan(&s.SocietyID, &vt, &s.LastNumber, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read voucher sequence for society %s type %s: %w", societyID, voucherType, err)
	}
	s.VoucherType = domain.VoucherType(vt)
	return &s, nil
}

// SaveJournal allocates the next voucher number, persists the journal header
// and its lines, and applies the account balance changes, all within one
// database transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal *domain.Journal, balanceChanges map[string]decimal.Decimal) (*domain.Journal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	saved, err := r.saveJournalInTx(ctx, tx, journal, balanceChanges)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

// SaveReversalJournal persists a reversing journal and flips the original to
// REVERSED in the same transaction, so the pair is linked atomically.
func (r *PgxJournalRepository) SaveReversalJournal(ctx context.Context, reversal *domain.Journal, originalJournalID string, balanceChanges map[string]decimal.Decimal) (*domain.Journal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	saved, err := r.saveJournalInTx(ctx, tx, reversal, balanceChanges)
	if err != nil {
		return nil, err
	}

	if err := r.MarkJournalReversed(ctx, tx, originalJournalID, saved.JournalID, reversal.CreatedBy, reversal.CreatedAt); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *PgxJournalRepository) saveJournalInTx(ctx context.Context, tx pgx.Tx, journal *domain.Journal, balanceChanges map[string]decimal.Decimal) (*domain.Journal, error) {
	now := journal.CreatedAt
	userID := journal.CreatedBy

	// 1. Allocate the voucher number inside this transaction.
	seq, err := r.NextVoucherNumber(ctx, tx, journal.SocietyID, journal.VoucherType)
	if err != nil {
		return nil, err
	}
	journal.SequenceNumber = seq
	journal.VoucherNumber = domain.FormatVoucherNumber(journal.VoucherType, seq)

	// 2. Insert the journal header.
	modelJournal := mapping.ToModelJournal(*journal)
	journalQuery := `
		INSERT INTO journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, journalQuery,
		modelJournal.JournalID,
		modelJournal.SocietyID,
		modelJournal.JournalDate,
		modelJournal.Description,
		modelJournal.VoucherType,
		modelJournal.VoucherNumber,
		modelJournal.SequenceNumber,
		modelJournal.Status,
		modelJournal.OriginalJournalID,
		modelJournal.ReversingJournalID,
		modelJournal.Amount,
		modelJournal.CreatedAt,
		modelJournal.CreatedBy,
		modelJournal.LastUpdatedAt,
		modelJournal.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "voucher_number") {
			return nil, &apperrors.SequenceCollisionError{
				SocietyID:     modelJournal.SocietyID,
				VoucherNumber: modelJournal.VoucherNumber,
			}
		}
		return nil, apperrors.NewAppError(500, "failed to insert journal "+modelJournal.JournalID, err)
	}

	// 3. Lock accounts and get balances as they stand before this journal.
	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}
	lockedAccounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}

	// 4. Apply the balance changes.
	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update account balances", err)
	}

	// 5. Insert the transaction lines with running balances.
	batch := &pgx.Batch{}
	txnQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	currentRunningBalances := make(map[string]decimal.Decimal)
	for accID, lockedAcc := range lockedAccounts {
		currentRunningBalances[accID] = lockedAcc.Balance
	}

	transactions := journal.Transactions
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].TransactionID < transactions[j].TransactionID
	})

	for i := range transactions {
		txn := &transactions[i]
		txn.JournalID = journal.JournalID

		lockedAccount, ok := lockedAccounts[txn.AccountID]
		if !ok {
			return nil, apperrors.NewAppError(500, "internal error: locked account "+txn.AccountID+" not found during transaction processing", nil)
		}

		signedAmount, err := accounting.CalculateSignedAmount(*txn, lockedAccount.AccountType)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to calculate signed amount for transaction "+txn.TransactionID, err)
		}
		newRunningBalance := currentRunningBalances[txn.AccountID].Add(signedAmount)
		txn.RunningBalance = newRunningBalance
		currentRunningBalances[txn.AccountID] = newRunningBalance

		modelTxn := mapping.ToModelTransaction(*txn)
		modelTxn.CreatedAt = now
		modelTxn.LastUpdatedAt = now
		modelTxn.CreatedBy = userID
		modelTxn.LastUpdatedBy = userID

		batch.Queue(txnQuery,
			modelTxn.TransactionID,
			modelTxn.JournalID,
			modelTxn.AccountID,
			modelTxn.Amount,
			modelTxn.TransactionType,
			modelTxn.FlatID,
			modelTxn.Notes,
			modelTxn.RunningBalance,
			modelTxn.CreatedAt,
			modelTxn.CreatedBy,
			modelTxn.LastUpdatedAt,
			modelTxn.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to execute transaction batch for journal "+modelJournal.JournalID, err)
	}

	return journal, nil
}

// MarkJournalReversed sets the original journal's status to REVERSED and
// links it to the reversing journal. Fails with ErrConflict if the journal
// is not in POSTED status, which also guards against double reversal.
func (r *PgxJournalRepository) MarkJournalReversed(ctx context.Context, tx pgx.Tx, originalJournalID string, reversingJournalID string, userID string, now time.Time) error {
	query := `
		UPDATE journals
		SET status = 'REVERSED', reversing_journal_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = $1 AND status = 'POSTED';
	`
	cmdTag, err := tx.Exec(ctx, query, originalJournalID, reversingJournalID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark journal "+originalJournalID+" reversed", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s is not in POSTED status", apperrors.ErrConflict, originalJournalID)
	}
	return nil
}

func scanJournal(row pgx.Row) (*models.Journal, error) {
	var m models.Journal
	var originalID sql.NullString
	var reversingID sql.NullString

	err := row.Scan(
		&m.JournalID,
		&m.SocietyID,
		&m.JournalDate,
		&m.Description,
		&m.VoucherType,
		&m.VoucherNumber,
		&m.SequenceNumber,
		&m.Status,
		&originalID,
		&reversingID,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	if originalID.Valid {
		m.OriginalJournalID = &originalID.String
	}
	if reversingID.Valid {
		m.ReversingJournalID = &reversingID.String
	}
	return &m, nil
}

// FindJournalByID retrieves a journal by its ID, scoped to the society.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, societyID string, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1 AND society_id = $2;`

	m, err := scanJournal(r.Pool.QueryRow(ctx, query, journalID, societyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal by ID "+journalID, err)
	}

	domainJournal := mapping.ToDomainJournal(*m)
	return &domainJournal, nil
}

// ListJournalsBySociety retrieves a paginated list of journals for a society
// using token-based keyset pagination.
func (r *PgxJournalRepository) ListJournalsBySociety(ctx context.Context, societyID string, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to detect whether another page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + journalColumns + ` FROM journals`
	filterClause := `WHERE society_id = $1`
	if !includeReversals {
		filterClause += ` AND status != 'REVERSED' AND original_journal_id IS NULL`
	}
	orderByClause := `ORDER BY journal_date DESC, created_at DESC`

	args := []interface{}{societyID}
	query := baseQuery + " " + filterClause
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		query += ` AND (journal_date, created_at) < ($2, $3)`
	}
	args = append(args, fetchLimit)
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journals for society "+societyID, err)
	}
	defer rows.Close()

	modelJournals := make([]models.Journal, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanJournal(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal row for society "+societyID, scanErr)
		}
		modelJournals = append(modelJournals, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal rows for society "+societyID, err)
	}

	var nextTokenVal *string
	results := modelJournals
	if len(modelJournals) > limit {
		lastJournal := modelJournals[limit-1]
		newToken := pagination.EncodeToken(lastJournal.JournalDate, lastJournal.CreatedAt)
		nextTokenVal = &newToken
		results = modelJournals[:limit]
	}

	domainJournals := make([]domain.Journal, len(results))
	for i, m := range results {
		domainJournals[i] = mapping.ToDomainJournal(m)
	}
	return domainJournals, nextTokenVal, nil
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	var flatID sql.NullString
	err := row.Scan(
		&t.TransactionID,
		&t.JournalID,
		&t.AccountID,
		&t.Amount,
		&t.TransactionType,
		&flatID,
		&t.Notes,
		&t.RunningBalance,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if flatID.Valid {
		t.FlatID = &flatID.String
	}
	return &t, nil
}

// FindTransactionsByJournalID retrieves all lines of a journal.
func (r *PgxJournalRepository) FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE journal_id = $1 ORDER BY transaction_id;`

	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for journal "+journalID, err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row for journal "+journalID, err)
		}
		transactions = append(transactions, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows for journal "+journalID, err)
	}

	return mapping.ToDomainTransactionSlice(transactions), nil
}

// FindTransactionsByJournalIDs retrieves lines for a batch of journals,
// keyed by journal ID. Journals without lines get an empty slice.
func (r *PgxJournalRepository) FindTransactionsByJournalIDs(ctx context.Context, journalIDs []string) (map[string][]domain.Transaction, error) {
	if len(journalIDs) == 0 {
		return map[string][]domain.Transaction{}, nil
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE journal_id = ANY($1) ORDER BY journal_id, transaction_id;`

	rows, err := r.Pool.Query(ctx, query, journalIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for journal IDs", err)
	}
	defer rows.Close()

	transactionsMap := make(map[string][]domain.Transaction)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row during batch fetch", err)
		}
		domainTxn := mapping.ToDomainTransaction(*t)
		transactionsMap[domainTxn.JournalID] = append(transactionsMap[domainTxn.JournalID], domainTxn)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows during batch fetch", err)
	}

	for _, jid := range journalIDs {
		if _, exists := transactionsMap[jid]; !exists {
			transactionsMap[jid] = []domain.Transaction{}
		}
	}
	return transactionsMap, nil
}

// ListTransactionsByAccount retrieves a paginated account statement using
// token-based keyset pagination, joining the journal header for date and
// description context.
func (r *PgxJournalRepository) ListTransactionsByAccount(ctx context.Context, societyID string, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT t.transaction_id, t.journal_id, t.account_id, t.amount, t.transaction_type, t.flat_id, t.notes,
		       t.running_balance, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by,
		       j.journal_date, j.description
		FROM transactions t
		JOIN journals j ON t.journal_id = j.journal_id
		WHERE t.account_id = $1 AND j.society_id = $2
	`
	orderByClause := `ORDER BY j.journal_date DESC, t.created_at DESC`

	args := []interface{}{accountID, societyID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastJournalDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastJournalDate, lastCreatedAt)
		query += ` AND (j.journal_date, t.created_at) < ($3, $4)`
	}
	args = append(args, fetchLimit)
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for account "+accountID+" in society "+societyID, err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		var t models.Transaction
		var flatID sql.NullString
		err := rows.Scan(
			&t.TransactionID,
			&t.JournalID,
			&t.AccountID,
			&t.Amount,
			&t.TransactionType,
			&flatID,
			&t.Notes,
			&t.RunningBalance,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
			&t.JournalDate,
			&t.JournalDescription,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row for account "+accountID, err)
		}
		if flatID.Valid {
			t.FlatID = &flatID.String
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows for account "+accountID, err)
	}

	var nextTokenVal *string
	results := transactions
	if len(transactions) > limit {
		lastTxn := transactions[limit-1]
		token := pagination.EncodeToken(lastTxn.JournalDate, lastTxn.CreatedAt)
		nextTokenVal = &token
		results = transactions[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}
