package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reveda-health/reveda-server/internal/pkg/apperrors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// ErrorKindResponse maps an authentication error kind to its transport
// status code. Unrecognized errors surface as a generic 500 so internal
// faults never leak details to the client.
func ErrorKindResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrUserExists):
		return ErrorResponseHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrUserNotFound):
		return ErrorResponseHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrInvalidOTP),
		errors.Is(err, apperrors.ErrOTPExpired):
		return ErrorResponseHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrOTPDelivery):
		return ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrInvalidGoogleToken):
		return ErrorResponseHandler(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrPendingApproval),
		errors.Is(err, apperrors.ErrUnverified):
		return ErrorResponseHandler(c, http.StatusForbidden, err.Error())
	default:
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}
