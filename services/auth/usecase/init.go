package usecase

import (
	"github.com/reveda-health/reveda-server/internal/pkg/models"
	"github.com/reveda-health/reveda-server/services/auth"
)

// AuthUC composes the identity store, OTP policy, token service and
// delivery gateways into the authentication flows.
type AuthUC struct {
	userRepo auth.UserRepo
	notifier auth.NotifierGW
	verifier auth.IdentityVerifier
	events   auth.EventGW
	cfg      *models.Config
}

// NewAuthUC creates a new authentication usecase instance
func NewAuthUC(
	userRepo auth.UserRepo,
	notifier auth.NotifierGW,
	verifier auth.IdentityVerifier,
	events auth.EventGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		userRepo: userRepo,
		notifier: notifier,
		verifier: verifier,
		events:   events,
		cfg:      cfg,
	}
}
