package models

// SignupRequest represents a request to create a new account
type SignupRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number"`
}

// LoginRequest represents a request to start an OTP login challenge.
// Identifier may be an email address or a phone number.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

// VerifyOTPRequest represents a request to verify an OTP challenge
type VerifyOTPRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	OTP        string `json:"otp" validate:"required"`
}

// RefreshTokenRequest represents a request to rotate a token pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// GoogleLoginRequest carries a Google ID token for federated login
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// TokenPair represents an access/refresh token pair minted together
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	User   *User      `json:"user"`
	Tokens *TokenPair `json:"tokens"`
}

// GoogleUser holds the profile claims extracted from a verified Google
// identity assertion
type GoogleUser struct {
	Email     string
	FirstName string
	LastName  string
	Picture   string
	GoogleID  string
}
