package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/reveda-health/reveda-server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/reveda-health/reveda-server/services/auth AuthUC

// AuthUC represents the authentication orchestrator interface
type AuthUC interface {
	// OTP flows
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, identifier string) (*models.User, error)
	VerifyOTP(ctx context.Context, identifier, code string) (*models.AuthResponse, error)
	ResendOTP(ctx context.Context, identifier string) error

	// token lifecycle
	RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error)

	// federated login
	LoginWithGoogle(ctx context.Context, idToken string) (*models.AuthResponse, error)

	// used by the access gate to re-check live user state
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
