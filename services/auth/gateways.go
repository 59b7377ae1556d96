package auth

import (
	"context"

	"github.com/reveda-health/reveda-server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/reveda-health/reveda-server/services/auth NotifierGW,IdentityVerifier,EventGW

// NotifierGW delivers one-time codes to a contact channel. Delivery
// outcome is a boolean so the orchestrator decides rollback policy per
// flow; implementations never panic on failure.
type NotifierGW interface {
	SendOTPEmail(ctx context.Context, email, code, firstName string) bool
	SendOTPSMS(ctx context.Context, phone, code string) bool
}

// IdentityVerifier verifies a third-party identity assertion and yields
// trusted profile claims.
type IdentityVerifier interface {
	VerifyGoogleToken(ctx context.Context, idToken string) (*models.GoogleUser, error)
}

// EventGW publishes authentication domain events. Publishing is
// best-effort; failures are logged, never propagated to the caller.
type EventGW interface {
	PublishUserCreated(ctx context.Context, user *models.User) error
	PublishUserVerified(ctx context.Context, user *models.User) error
}
