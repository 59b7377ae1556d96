package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reveda-health/reveda-server/internal/pkg/logger"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
	"github.com/reveda-health/reveda-server/internal/utils"
	"github.com/reveda-health/reveda-server/services/auth"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Signup handles account creation requests
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return utils.BadRequestResponse(c, "First name, last name and email are required")
	}

	user, err := h.authUC.Signup(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Signup failed",
			logger.Err(err),
			logger.String("email", req.Email))
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Signup successful, OTP sent", user)
}

// Login handles OTP challenge requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Identifier == "" {
		return utils.BadRequestResponse(c, "Identifier is required")
	}

	user, err := h.authUC.Login(c.Request().Context(), req.Identifier)
	if err != nil {
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", user)
}

// VerifyOTP handles OTP verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Identifier == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Identifier and OTP are required")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.Identifier, req.OTP)
	if err != nil {
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account verified successfully", resp)
}

// ResendOTP handles OTP resend requests
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Identifier == "" {
		return utils.BadRequestResponse(c, "Identifier is required")
	}

	if err := h.authUC.ResendOTP(c.Request().Context(), req.Identifier); err != nil {
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP resent successfully", nil)
}

// RefreshToken handles token pair rotation requests
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req models.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.RefreshToken == "" {
		return utils.BadRequestResponse(c, "Refresh token is required")
	}

	resp, err := h.authUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", resp)
}

// GoogleLogin handles federated login requests
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req models.GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.IDToken == "" {
		return utils.BadRequestResponse(c, "ID token is required")
	}

	resp, err := h.authUC.LoginWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Google login successful", resp)
}

// Profile returns the authenticated user's record as stored
func (h *AuthHandler) Profile(c echo.Context) error {
	user, ok := c.Get("user").(*models.User)
	if !ok {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}
