package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jayamurli1954/GharMitra-sub002/internal/apperrors"
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	portsrepo "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/repositories"
	portssvc "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/services"
	"github.com/jayamurli1954/GharMitra-sub002/internal/dto"
)

const defaultCurrencyCode = "INR"

// roleRank orders society roles for authorization checks. Higher ranks
// satisfy requirements for lower ones.
var roleRank = map[domain.SocietyRole]int{
	domain.RoleReadOnly: 1,
	domain.RoleMember:   2,
	domain.RoleAdmin:    3,
}

// societyService provides society and membership operations, and acts as the
// authorizer for all other services.
type societyService struct {
	BaseService
	societyRepo portsrepo.SocietyRepositoryFacade
}

// NewSocietyService creates a new SocietyService.
func NewSocietyService(societyRepo portsrepo.SocietyRepositoryFacade) portssvc.SocietySvcFacade {
	return &societyService{societyRepo: societyRepo}
}

// Ensure societyService implements the portssvc.SocietySvcFacade interface
var _ portssvc.SocietySvcFacade = (*societyService)(nil)

// AuthorizeUserAction verifies the user is a member of the society with at
// least the required role. A missing membership is reported as ErrForbidden
// rather than ErrNotFound so callers don't leak society existence.
func (s *societyService) AuthorizeUserAction(ctx context.Context, userID string, societyID string, requiredRole domain.SocietyRole) error {
	member, err := s.societyRepo.FindMember(ctx, societyID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %s is not a member of society %s", apperrors.ErrForbidden, userID, societyID)
		}
		s.LogError(ctx, err, "Failed to look up membership", "user_id", userID, "society_id", societyID)
		return fmt.Errorf("failed to verify membership: %w", err)
	}

	if member.Role == domain.RoleRemoved {
		return fmt.Errorf("%w: user %s was removed from society %s", apperrors.ErrForbidden, userID, societyID)
	}
	if roleRank[member.Role] < roleRank[requiredRole] {
		return fmt.Errorf("%w: user %s has role %s, requires %s", apperrors.ErrForbidden, userID, member.Role, requiredRole)
	}
	return nil
}

// CreateSociety creates a society and enrolls the creator as its first admin.
func (s *societyService) CreateSociety(ctx context.Context, req dto.CreateSocietyRequest, creatorUserID string) (*domain.Society, error) {
	now := time.Now().UTC()

	currency := req.CurrencyCode
	if currency == "" {
		currency = defaultCurrencyCode
	}

	society := domain.Society{
		SocietyID:          uuid.NewString(),
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		CurrencyCode:       currency,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.societyRepo.SaveSociety(ctx, &society); err != nil {
		s.LogError(ctx, err, "Failed to save society", "name", req.Name)
		return nil, fmt.Errorf("failed to create society: %w", err)
	}

	creatorMember := domain.SocietyMember{
		UserID:    creatorUserID,
		SocietyID: society.SocietyID,
		Role:      domain.RoleAdmin,
		JoinedAt:  now,
	}
	if err := s.societyRepo.AddMember(ctx, &creatorMember); err != nil {
		s.LogError(ctx, err, "Failed to add creator as admin", "society_id", society.SocietyID)
		return nil, fmt.Errorf("failed to enroll creator in society: %w", err)
	}

	s.LogInfo(ctx, "Society created", "society_id", society.SocietyID, "name", society.Name)
	return &society, nil
}

// GetSocietyByID retrieves a society the user belongs to.
func (s *societyService) GetSocietyByID(ctx context.Context, societyID string, userID string) (*domain.Society, error) {
	if err := s.AuthorizeUserAction(ctx, userID, societyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	society, err := s.societyRepo.FindSocietyByID(ctx, societyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find society", "society_id", societyID)
		}
		return nil, err
	}
	return society, nil
}

// ListUserSocieties retrieves the societies a user belongs to.
func (s *societyService) ListUserSocieties(ctx context.Context, userID string) ([]domain.Society, error) {
	societies, err := s.societyRepo.ListSocietiesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list societies for user", "user_id", userID)
		return nil, fmt.Errorf("failed to list societies: %w", err)
	}
	return societies, nil
}

// ListMembers retrieves the members of a society.
func (s *societyService) ListMembers(ctx context.Context, societyID string, userID string) ([]domain.SocietyMember, error) {
	if err := s.AuthorizeUserAction(ctx, userID, societyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	members, err := s.societyRepo.ListMembers(ctx, societyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members", "society_id", societyID)
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// AddMember adds a user to a society. Admin only.
func (s *societyService) AddMember(ctx context.Context, societyID string, req dto.AddSocietyMemberRequest, actingUserID string) (*domain.SocietyMember, error) {
	if err := s.AuthorizeUserAction(ctx, actingUserID, societyID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	member := domain.SocietyMember{
		UserID:    req.UserID,
		SocietyID: societyID,
		FlatID:    req.FlatID,
		Role:      req.Role,
		JoinedAt:  time.Now().UTC(),
	}

	if err := s.societyRepo.AddMember(ctx, &member); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to add member", "society_id", societyID, "new_user_id", req.UserID)
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.LogInfo(ctx, "Member added to society", "society_id", societyID, "new_user_id", req.UserID, "role", string(req.Role))
	return &member, nil
}
