package dto

import (
	"time"

	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
)

// CreateSocietyRequest defines the request payload for creating a society
type CreateSocietyRequest struct {
	Name               string `json:"name" binding:"required,min=3,max=100"`
	RegistrationNumber string `json:"registrationNumber" binding:"omitempty,max=50"`
	CurrencyCode       string `json:"currencyCode" binding:"omitempty,len=3"`
}

// AddSocietyMemberRequest defines the request payload for adding a member to a society
type AddSocietyMemberRequest struct {
	UserID string             `json:"userId" binding:"required"`
	FlatID string             `json:"flatId" binding:"omitempty,max=20"`
	Role   domain.SocietyRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// SocietyResponse defines the response payload for society details
type SocietyResponse struct {
	SocietyID          string    `json:"societyId"`
	Name               string    `json:"name"`
	RegistrationNumber string    `json:"registrationNumber,omitempty"`
	CurrencyCode       string    `json:"currencyCode"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
}

// SocietyMemberResponse defines the response payload for a society member
type SocietyMemberResponse struct {
	UserID   string             `json:"userId"`
	FlatID   string             `json:"flatId,omitempty"`
	Role     domain.SocietyRole `json:"role"`
	JoinedAt time.Time          `json:"joinedAt"`
}

// ToSocietyResponse converts a domain society to its response representation
func ToSocietyResponse(s *domain.Society) SocietyResponse {
	return SocietyResponse{
		SocietyID:          s.SocietyID,
		Name:               s.Name,
		RegistrationNumber: s.RegistrationNumber,
		CurrencyCode:       s.CurrencyCode,
		IsActive:           s.IsActive,
		CreatedAt:          s.CreatedAt,
	}
}

// ToSocietyMemberResponse converts a domain member to its response representation
func ToSocietyMemberResponse(m *domain.SocietyMember) SocietyMemberResponse {
	return SocietyMemberResponse{
		UserID:   m.UserID,
		FlatID:   m.FlatID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
}
