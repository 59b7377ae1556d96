package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/reveda-health/reveda-server/internal/pkg/apperrors"
	jwtpkg "github.com/reveda-health/reveda-server/internal/pkg/jwt"
	"github.com/reveda-health/reveda-server/internal/pkg/logger"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
	"github.com/reveda-health/reveda-server/internal/pkg/otp"
	"github.com/reveda-health/reveda-server/internal/utils"
)

// Signup creates an unverified user under the default Patient role and
// dispatches a first OTP. If dispatch fails the created record is
// deleted again (compensating rollback, not a transaction) so a failed
// signup leaves no partial state behind.
func (u *AuthUC) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	email := utils.NormalizeEmail(req.Email)

	exists, err := u.userRepo.ExistsByEmailOrPhone(ctx, email, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrUserExists
	}

	patientRole, err := u.userRepo.GetRoleByName(ctx, models.RolePatient)
	if err != nil {
		return nil, err
	}

	code, err := otp.Generate()
	if err != nil {
		return nil, err
	}
	expiry := otp.ExpiryFromNow()

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		RoleID:       patientRole.ID,
		RoleName:     patientRole.Name,
		IsVerified:   false,
		OTPCode:      &code,
		OTPExpiresAt: &expiry,
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = &req.PhoneNumber
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	sent := false
	if user.Email != "" {
		sent = u.notifier.SendOTPEmail(ctx, user.Email, code, user.FirstName)
	} else if user.HasPhone() {
		sent = u.notifier.SendOTPSMS(ctx, *user.PhoneNumber, code)
	}

	if !sent {
		// Best-effort rollback; a crash here can orphan an unverified user.
		if delErr := u.userRepo.DeleteUser(ctx, user.ID); delErr != nil {
			logger.Error("Failed to roll back user after OTP dispatch failure",
				logger.Err(delErr),
				logger.String("user_id", user.ID.String()))
		}
		return nil, apperrors.ErrOTPDelivery
	}

	if err := u.events.PublishUserCreated(ctx, user); err != nil {
		logger.Warn("Failed to publish user created event",
			logger.Err(err),
			logger.String("user_id", user.ID.String()))
	}

	logger.Info("User signed up, OTP dispatched",
		logger.String("user_id", user.ID.String()),
		logger.String("email", user.Email))

	return user, nil
}

// Login starts an OTP challenge for an existing user. The identifier may
// be an email address or a phone number. Doctors that have not been
// approved by an administrator cannot log in at all, regardless of OTP
// state.
func (u *AuthUC) Login(ctx context.Context, identifier string) (*models.User, error) {
	user, err := u.userRepo.GetUserByEmailOrPhone(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if user.RoleName == models.RoleDoctor && !user.IsVerified {
		return nil, apperrors.ErrPendingApproval
	}

	code, err := u.issueOTP(ctx, user)
	if err != nil {
		return nil, err
	}

	// The freshly persisted OTP stays valid even when dispatch fails:
	// there was no prior consistent state to protect.
	if !u.dispatchOTP(ctx, user, identifier, code) {
		return nil, apperrors.ErrOTPDelivery
	}

	logger.Info("Login OTP dispatched",
		logger.String("user_id", user.ID.String()))

	return user, nil
}

// VerifyOTP checks a submitted code against the stored challenge. On
// success the OTP fields are cleared together, the account is marked
// verified and a fresh token pair is minted. This is the single path by
// which local verification is achieved.
func (u *AuthUC) VerifyOTP(ctx context.Context, identifier, code string) (*models.AuthResponse, error) {
	user, err := u.userRepo.GetUserByEmailOrPhone(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if user.OTPCode == nil || *user.OTPCode != code {
		return nil, apperrors.ErrInvalidOTP
	}

	if user.OTPExpiresAt == nil || otp.IsExpired(*user.OTPExpiresAt, time.Now()) {
		return nil, apperrors.ErrOTPExpired
	}

	user.OTPCode = nil
	user.OTPExpiresAt = nil
	if !user.IsVerified {
		user.IsVerified = true
	}

	if err := u.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := jwtpkg.GenerateTokenPair(user, u.cfg.JWT)
	if err != nil {
		return nil, err
	}

	if err := u.events.PublishUserVerified(ctx, user); err != nil {
		logger.Warn("Failed to publish user verified event",
			logger.Err(err),
			logger.String("user_id", user.ID.String()))
	}

	logger.Info("OTP verified",
		logger.String("user_id", user.ID.String()))

	return &models.AuthResponse{User: user, Tokens: tokens}, nil
}

// ResendOTP issues a brand-new code, invalidating any prior unconsumed
// one, and dispatches it by the same channel policy as Login.
func (u *AuthUC) ResendOTP(ctx context.Context, identifier string) error {
	user, err := u.userRepo.GetUserByEmailOrPhone(ctx, identifier)
	if err != nil {
		return err
	}

	code, err := u.issueOTP(ctx, user)
	if err != nil {
		return err
	}

	if !u.dispatchOTP(ctx, user, identifier, code) {
		return apperrors.ErrOTPDelivery
	}

	logger.Info("OTP resent",
		logger.String("user_id", user.ID.String()))

	return nil
}

// RefreshToken rotates a token pair. The user is re-fetched so the new
// claims reflect current state; the old refresh token is not revoked
// (stateless tokens, no revocation list).
func (u *AuthUC) RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	claims, err := jwtpkg.VerifyRefreshToken(refreshToken, u.cfg.JWT)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	tokens, err := jwtpkg.GenerateTokenPair(user, u.cfg.JWT)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{User: user, Tokens: tokens}, nil
}

// GetUserByID re-fetches live user state; used by the access gate on
// every protected request.
func (u *AuthUC) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, id)
}

// issueOTP attaches a fresh code and expiry to the user, superseding any
// previous challenge.
func (u *AuthUC) issueOTP(ctx context.Context, user *models.User) (string, error) {
	code, err := otp.Generate()
	if err != nil {
		return "", err
	}
	expiry := otp.ExpiryFromNow()

	user.OTPCode = &code
	user.OTPExpiresAt = &expiry

	if err := u.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}

	return code, nil
}

// dispatchOTP picks a delivery channel: SMS when the login identifier
// looks like a phone number and one is on record, otherwise email, with
// SMS as the last fallback for users without an email.
func (u *AuthUC) dispatchOTP(ctx context.Context, user *models.User, identifier, code string) bool {
	switch {
	case utils.IsPhoneNumber(identifier) && user.HasPhone():
		return u.notifier.SendOTPSMS(ctx, *user.PhoneNumber, code)
	case user.Email != "":
		return u.notifier.SendOTPEmail(ctx, user.Email, code, user.FirstName)
	case user.HasPhone():
		return u.notifier.SendOTPSMS(ctx, *user.PhoneNumber, code)
	default:
		return false
	}
}
