package models

import "time"

// Society represents a society (tenant) row.
type Society struct {
	SocietyID          string `db:"society_id"`
	Name               string `db:"name"`
	RegistrationNumber string `db:"registration_number"`
	CurrencyCode       string `db:"currency_code"`
	IsActive           bool   `db:"is_active"`
	AuditFields
}

// SocietyMember represents a user's membership row in a society.
type SocietyMember struct {
	UserID    string    `db:"user_id"`
	SocietyID string    `db:"society_id"`
	FlatID    string    `db:"flat_id"`
	Role      string    `db:"role"`
	JoinedAt  time.Time `db:"joined_at"`
}
