package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/reveda-health/reveda-server/internal/pkg/apperrors"
	jwtpkg "github.com/reveda-health/reveda-server/internal/pkg/jwt"
	"github.com/reveda-health/reveda-server/internal/pkg/logger"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
)

// devGoogleToken short-circuits adapter verification for local
// development only; any other environment treats it as a normal token
// and it fails signature validation.
const devGoogleToken = "mock-google-id-token-dev"

// LoginWithGoogle authenticates against a verified Google identity
// assertion. New emails get a pre-verified Patient account; existing
// accounts are marked verified (never un-verified) and missing profile
// fields are backfilled. Always mints a fresh token pair.
func (u *AuthUC) LoginWithGoogle(ctx context.Context, idToken string) (*models.AuthResponse, error) {
	var googleUser *models.GoogleUser

	if u.cfg.App.Environment == "development" && idToken == devGoogleToken {
		googleUser = &models.GoogleUser{
			Email:     "test.user@example.com",
			FirstName: "Test",
			LastName:  "User",
			GoogleID:  "mock-google-id",
		}
	} else {
		verified, err := u.verifier.VerifyGoogleToken(ctx, idToken)
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidGoogleToken) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidGoogleToken, err)
		}
		googleUser = verified
	}

	user, err := u.userRepo.GetUserByEmail(ctx, googleUser.Email)
	switch {
	case err == nil:
		if err := u.adoptGoogleProfile(ctx, user, googleUser); err != nil {
			return nil, err
		}
	case errors.Is(err, apperrors.ErrUserNotFound):
		user, err = u.createGoogleUser(ctx, googleUser)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	tokens, err := jwtpkg.GenerateTokenPair(user, u.cfg.JWT)
	if err != nil {
		return nil, err
	}

	logger.Info("Google login succeeded",
		logger.String("user_id", user.ID.String()))

	return &models.AuthResponse{User: user, Tokens: tokens}, nil
}

// adoptGoogleProfile marks an existing user verified (monotonic) and
// backfills profile fields the local record is missing.
func (u *AuthUC) adoptGoogleProfile(ctx context.Context, user *models.User, googleUser *models.GoogleUser) error {
	changed := false

	if !user.IsVerified {
		user.IsVerified = true
		changed = true
	}
	if user.ProfilePicture == nil && googleUser.Picture != "" {
		user.ProfilePicture = &googleUser.Picture
		changed = true
	}
	if user.GoogleID == nil && googleUser.GoogleID != "" {
		user.GoogleID = &googleUser.GoogleID
		changed = true
	}

	if !changed {
		return nil
	}
	return u.userRepo.UpdateUser(ctx, user)
}

// createGoogleUser creates a pre-verified Patient from the trusted
// assertion. No phone number is required on this path.
func (u *AuthUC) createGoogleUser(ctx context.Context, googleUser *models.GoogleUser) (*models.User, error) {
	patientRole, err := u.userRepo.GetRoleByName(ctx, models.RolePatient)
	if err != nil {
		return nil, err
	}

	firstName := googleUser.FirstName
	if firstName == "" {
		firstName = "User"
	}

	user := &models.User{
		FirstName:  firstName,
		LastName:   googleUser.LastName,
		Email:      googleUser.Email,
		RoleID:     patientRole.ID,
		RoleName:   patientRole.Name,
		IsVerified: true,
	}
	if googleUser.Picture != "" {
		user.ProfilePicture = &googleUser.Picture
	}
	if googleUser.GoogleID != "" {
		user.GoogleID = &googleUser.GoogleID
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := u.events.PublishUserCreated(ctx, user); err != nil {
		logger.Warn("Failed to publish user created event",
			logger.Err(err),
			logger.String("user_id", user.ID.String()))
	}

	return user, nil
}
