package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jayamurli1954/GharMitra-sub002/internal/apperrors"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	portsrepo "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/repositories"
	"github.com/jayamurli1954/GharMitra-sub002/internal/models"
)

const societyColumns = `society_id, name, registration_number, currency_code, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxSocietyRepository struct {
	BaseRepository
}

// newPgxSocietyRepository creates a new repository for society data.
func newPgxSocietyRepository(pool *pgxpool.Pool) portsrepo.SocietyRepositoryFacade {
	return &PgxSocietyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSocietyRepository implements portsrepo.SocietyRepositoryFacade
var _ portsrepo.SocietyRepositoryFacade = (*PgxSocietyRepository)(nil)

func toModelSociety(d domain.Society) models.Society {
	return models.Society{
		SocietyID:          d.SocietyID,
		Name:               d.Name,
		RegistrationNumber: d.RegistrationNumber,
		CurrencyCode:       d.CurrencyCode,
		IsActive:           d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainSociety(m models.Society) domain.Society {
	return domain.Society{
		SocietyID:          m.SocietyID,
		Name:               m.Name,
		RegistrationNumber: m.RegistrationNumber,
		CurrencyCode:       m.CurrencyCode,
		IsActive:           m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanSociety(row pgx.Row) (*models.Society, error) {
	var m models.Society
	err := row.Scan(
		&m.SocietyID,
		&m.Name,
		&m.RegistrationNumber,
		&m.CurrencyCode,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveSociety inserts a new society.
func (r *PgxSocietyRepository) SaveSociety(ctx context.Context, society *domain.Society) error {
	m := toModelSociety(*society)

	query := `
		INSERT INTO societies (` + societyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SocietyID,
		m.Name,
		m.RegistrationNumber,
		m.CurrencyCode,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: society with ID %s already exists", apperrors.ErrDuplicate, m.SocietyID)
		}
		return fmt.Errorf("failed to save society %s: %w", m.SocietyID, err)
	}
	return nil
}

// UpdateSociety updates mutable fields of a society.
func (r *PgxSocietyRepository) UpdateSociety(ctx context.Context, society *domain.Society) error {
	m := toModelSociety(*society)

	query := `
		UPDATE societies
		SET name = $2, registration_number = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE society_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.SocietyID,
		m.Name,
		m.RegistrationNumber,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update society %s: %w", m.SocietyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSocietyByID retrieves a society by its ID.
func (r *PgxSocietyRepository) FindSocietyByID(ctx context.Context, societyID string) (*domain.Society, error) {
	query := `SELECT ` + societyColumns + ` FROM societies WHERE society_id = $1;`

	m, err := scanSociety(r.Pool.QueryRow(ctx, query, societyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find society by ID %s: %w", societyID, err)
	}

	society := toDomainSociety(*m)
	return &society, nil
}

// ListSocietiesByUser retrieves the societies a user is an active member of.
func (r *PgxSocietyRepository) ListSocietiesByUser(ctx context.Context, userID string) ([]domain.Society, error) {
	query := `
		SELECT s.society_id, s.name, s.registration_number, s.currency_code, s.is_active,
		       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
		FROM societies s
		JOIN society_members m ON m.society_id = s.society_id
		WHERE m.user_id = $1 AND m.role != 'REMOVED'
		ORDER BY s.name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query societies for user %s: %w", userID, err)
	}
	defer rows.Close()

	societies := []domain.Society{}
	for rows.Next() {
		m, err := scanSociety(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan society row for user %s: %w", userID, err)
		}
		societies = append(societies, toDomainSociety(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating society rows for user %s: %w", userID, rows.Err())
	}

	return societies, nil
}

// FindMember retrieves a user's membership in a society.
func (r *PgxSocietyRepository) FindMember(ctx context.Context, societyID string, userID string) (*domain.SocietyMember, error) {
	query := `
		SELECT user_id, society_id, flat_id, role, joined_at
		FROM society_members
		WHERE society_id = $1 AND user_id = $2;
	`
	var m models.SocietyMember
	err := r.Pool.QueryRow(ctx, query, societyID, userID).Scan(
		&m.UserID,
		&m.SocietyID,
		&m.FlatID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member %s in society %s: %w", userID, societyID, err)
	}

	return &domain.SocietyMember{
		UserID:    m.UserID,
		SocietyID: m.SocietyID,
		FlatID:    m.FlatID,
		Role:      domain.SocietyRole(m.Role),
		JoinedAt:  m.JoinedAt,
	}, nil
}

// ListMembers retrieves all members of a society.
func (r *PgxSocietyRepository) ListMembers(ctx context.Context, societyID string) ([]domain.SocietyMember, error) {
	query := `
		SELECT user_id, society_id, flat_id, role, joined_at
		FROM society_members
		WHERE society_id = $1
		ORDER BY joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, societyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members for society %s: %w", societyID, err)
	}
	defer rows.Close()

	members := []domain.SocietyMember{}
	for rows.Next() {
		var m models.SocietyMember
		if err := rows.Scan(&m.UserID, &m.SocietyID, &m.FlatID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member row for society %s: %w", societyID, err)
		}
		members = append(members, domain.SocietyMember{
			UserID:    m.UserID,
			SocietyID: m.SocietyID,
			FlatID:    m.FlatID,
			Role:      domain.SocietyRole(m.Role),
			JoinedAt:  m.JoinedAt,
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating member rows for society %s: %w", societyID, rows.Err())
	}

	return members, nil
}

// AddMember inserts a membership record.
func (r *PgxSocietyRepository) AddMember(ctx context.Context, member *domain.SocietyMember) error {
	query := `
		INSERT INTO society_members (user_id, society_id, flat_id, role, joined_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		member.UserID,
		member.SocietyID,
		member.FlatID,
		string(member.Role),
		member.JoinedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: user %s is already a member of society %s", apperrors.ErrDuplicate, member.UserID, member.SocietyID)
		}
		return fmt.Errorf("failed to add member %s to society %s: %w", member.UserID, member.SocietyID, err)
	}
	return nil
}

// UpdateMemberRole changes a member's role in a society.
func (r *PgxSocietyRepository) UpdateMemberRole(ctx context.Context, societyID string, userID string, role domain.SocietyRole) error {
	query := `
		UPDATE society_members
		SET role = $3
		WHERE society_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, societyID, userID, string(role))
	if err != nil {
		return fmt.Errorf("failed to update role for member %s in society %s: %w", userID, societyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
