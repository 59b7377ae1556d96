package models

import (
	"time"

	"github.com/google/uuid"
)

// Role names seeded at startup. The authentication flow only ever looks
// roles up by name; it never creates them.
const (
	RolePatient   = "Patient"
	RoleDoctor    = "Doctor"
	RoleAdmin     = "Admin"
	RoleMarketing = "Marketing"
)

// User represents an identity record. OTP state is embedded on the user
// rather than kept in a separate ledger: at most one code is active and a
// new issuance overwrites the previous one.
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	PhoneNumber    *string   `json:"phone_number,omitempty" db:"phone_number"`
	ProfilePicture *string   `json:"profile_picture,omitempty" db:"profile_picture"`
	IsVerified     bool      `json:"is_verified" db:"is_verified"`
	RoleID         uuid.UUID `json:"-" db:"role_id"`
	RoleName       string    `json:"role" db:"role_name"`
	GoogleID       *string   `json:"-" db:"google_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	// Credential and OTP fields never reach API responses.
	Password     string     `json:"-" db:"-"`
	PasswordHash *string    `json:"-" db:"password_hash"`
	OTPCode      *string    `json:"-" db:"otp_code"`
	OTPExpiresAt *time.Time `json:"-" db:"otp_expires_at"`
}

// HasPhone reports whether the user has a non-empty phone number on record.
func (u *User) HasPhone() bool {
	return u.PhoneNumber != nil && *u.PhoneNumber != ""
}

// Role represents a named permission group referenced by users.
type Role struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
