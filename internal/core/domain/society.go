package domain

import "time"

// Society represents a single housing society: the tenancy boundary for all
// ledger data. Nothing below a society is ever shared with another society.
type Society struct {
	SocietyID          string `json:"societyID"`          // Primary Key (UUID)
	Name               string `json:"name"`               // Registered society name
	RegistrationNumber string `json:"registrationNumber"` // Statutory registration number, optional
	CurrencyCode       string `json:"currencyCode"`       // Ledger currency, default INR
	IsActive           bool   `json:"isActive"`
	AuditFields
}

// SocietyRole defines the possible roles a user can have within a society.
type SocietyRole string

const (
	RoleAdmin    SocietyRole = "ADMIN"
	RoleMember   SocietyRole = "MEMBER"
	RoleReadOnly SocietyRole = "READONLY"
	RoleRemoved  SocietyRole = "REMOVED"
)

// SocietyMember represents the membership of a user in a society.
type SocietyMember struct {
	UserID    string      `json:"userID"`
	SocietyID string      `json:"societyID"`
	FlatID    string      `json:"flatID"` // Flat/unit identifier, e.g. "A-101"; empty for office bearers without a flat
	Role      SocietyRole `json:"role"`
	JoinedAt  time.Time   `json:"joinedAt"`
}
