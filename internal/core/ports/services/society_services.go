package services

import (
	"context"

	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	"github.com/jayamurli1954/GharMitra-sub002/internal/dto"
)

// SocietyAuthorizerSvc checks a user's standing within a society before
// ledger operations proceed
type SocietyAuthorizerSvc interface {
	// AuthorizeUserAction verifies the user holds at least the required role
	// in the society; returns ErrForbidden otherwise
	AuthorizeUserAction(ctx context.Context, userID string, societyID string, requiredRole domain.SocietyRole) error
}

// SocietyReaderSvc defines read operations on societies
type SocietyReaderSvc interface {
	// GetSocietyByID retrieves a society the user belongs to
	GetSocietyByID(ctx context.Context, societyID string, userID string) (*domain.Society, error)

	// ListUserSocieties retrieves the societies a user belongs to
	ListUserSocieties(ctx context.Context, userID string) ([]domain.Society, error)

	// ListMembers retrieves the members of a society
	ListMembers(ctx context.Context, societyID string, userID string) ([]domain.SocietyMember, error)
}

// SocietyWriterSvc defines write operations on societies
type SocietyWriterSvc interface {
	// CreateSociety creates a society with the creator as its first admin
	CreateSociety(ctx context.Context, req dto.CreateSocietyRequest, creatorUserID string) (*domain.Society, error)

	// AddMember adds a user to a society; admin only
	AddMember(ctx context.Context, societyID string, req dto.AddSocietyMemberRequest, actingUserID string) (*domain.SocietyMember, error)
}

// SocietySvcFacade is the complete interface for society operations
type SocietySvcFacade interface {
	SocietyAuthorizerSvc
	SocietyReaderSvc
	SocietyWriterSvc
}
