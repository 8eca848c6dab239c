package repositories

import (
	"context"

	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
)

// SocietyReader defines read operations for societies
type SocietyReader interface {
	// FindSocietyByID retrieves a society by its ID
	FindSocietyByID(ctx context.Context, societyID string) (*domain.Society, error)

	// ListSocietiesByUser retrieves the societies a user belongs to
	ListSocietiesByUser(ctx context.Context, userID string) ([]domain.Society, error)
}

// SocietyWriter defines write operations for societies
type SocietyWriter interface {
	// SaveSociety persists a new society
	SaveSociety(ctx context.Context, society *domain.Society) error

	// UpdateSociety updates mutable fields of a society
	UpdateSociety(ctx context.Context, society *domain.Society) error
}

// SocietyMemberReader defines read operations for society membership
type SocietyMemberReader interface {
	// FindMember retrieves a user's membership in a society, or ErrNotFound
	FindMember(ctx context.Context, societyID string, userID string) (*domain.SocietyMember, error)

	// ListMembers retrieves the members of a society
	ListMembers(ctx context.Context, societyID string) ([]domain.SocietyMember, error)
}

// SocietyMemberWriter defines write operations for society membership
type SocietyMemberWriter interface {
	// AddMember persists a membership record
	AddMember(ctx context.Context, member *domain.SocietyMember) error

	// UpdateMemberRole changes a member's role
	UpdateMemberRole(ctx context.Context, societyID string, userID string, role domain.SocietyRole) error
}

// SocietyRepositoryFacade is the complete interface for society persistence
type SocietyRepositoryFacade interface {
	SocietyReader
	SocietyWriter
	SocietyMemberReader
	SocietyMemberWriter
	TransactionManager
}
