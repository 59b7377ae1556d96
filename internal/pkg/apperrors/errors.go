// Package apperrors defines the stable error kinds surfaced by the
// authentication core. Handlers translate these into transport status
// codes; the usecase and middleware layers never swallow them.
package apperrors

import "errors"

// Identity
var (
	ErrUserExists   = errors.New("user with this email or phone number already exists")
	ErrUserNotFound = errors.New("user not found")
)

// OTP lifecycle
var (
	ErrInvalidOTP  = errors.New("invalid otp")
	ErrOTPExpired  = errors.New("otp expired")
	ErrOTPDelivery = errors.New("failed to send otp")
)

// Tokens
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidGoogleToken = errors.New("invalid google token")
)

// Account state
var (
	ErrPendingApproval = errors.New("account is pending admin approval")
	ErrUnverified      = errors.New("account not verified")
)

// Operator errors. A missing seed role is a deployment precondition
// failure, not a user error.
var (
	ErrRoleNotSeeded = errors.New("default role not found")
)
