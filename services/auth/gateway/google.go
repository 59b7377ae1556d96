package gateway

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/reveda-health/reveda-server/internal/pkg/apperrors"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
)

// GoogleVerifier validates Google ID tokens against the configured
// OAuth client ID.
type GoogleVerifier struct {
	clientID string
}

// NewGoogleVerifier creates a new Google identity verifier
func NewGoogleVerifier(cfg models.GoogleConfig) *GoogleVerifier {
	return &GoogleVerifier{clientID: cfg.ClientID}
}

// VerifyGoogleToken validates the assertion signature and audience and
// extracts the profile claims. An assertion without an email is rejected.
func (g *GoogleVerifier) VerifyGoogleToken(ctx context.Context, token string) (*models.GoogleUser, error) {
	payload, err := idtoken.Validate(ctx, token, g.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidGoogleToken, err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: assertion has no email", apperrors.ErrInvalidGoogleToken)
	}

	firstName, _ := payload.Claims["given_name"].(string)
	lastName, _ := payload.Claims["family_name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	sub, _ := payload.Claims["sub"].(string)

	return &models.GoogleUser{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Picture:   picture,
		GoogleID:  sub,
	}, nil
}
