package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reveda-health/reveda-server/internal/pkg/apperrors"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
	"github.com/reveda-health/reveda-server/internal/utils"
	"github.com/reveda-health/reveda-server/services/auth/mocks"
)

func setupHandlerTest(t *testing.T) (*AuthHandler, *mocks.MockAuthUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(mockUC), mockUC
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestSignupHandler_Success(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	user := &models.User{ID: uuid.New(), FirstName: "Jane", Email: "jane@example.com"}
	mockUC.EXPECT().Signup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req *models.SignupRequest) (*models.User, error) {
			assert.Equal(t, "jane@example.com", req.Email)
			return user, nil
		})

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/signup",
		`{"first_name":"Jane","last_name":"Doe","email":"jane@example.com"}`)

	err := h.Signup(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestSignupHandler_MissingFields(t *testing.T) {
	h, _ := setupHandlerTest(t)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/signup", `{"email":"jane@example.com"}`)

	err := h.Signup(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignupHandler_Conflict(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserExists)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/signup",
		`{"first_name":"Jane","last_name":"Doe","email":"jane@example.com"}`)

	err := h.Signup(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSignupHandler_NoCredentialLeakInResponse(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	code := "123456"
	hash := "$2a$12$somethinghashed"
	user := &models.User{
		ID:           uuid.New(),
		FirstName:    "Jane",
		Email:        "jane@example.com",
		OTPCode:      &code,
		PasswordHash: &hash,
	}
	mockUC.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(user, nil)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/signup",
		`{"first_name":"Jane","last_name":"Doe","email":"jane@example.com"}`)

	require.NoError(t, h.Signup(e.NewContext(req, rec)))
	assert.NotContains(t, rec.Body.String(), "123456")
	assert.NotContains(t, rec.Body.String(), "somethinghashed")
}

func TestLoginHandler_Success(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	user := &models.User{ID: uuid.New(), Email: "jane@example.com"}
	mockUC.EXPECT().Login(gomock.Any(), "jane@example.com").Return(user, nil)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/login", `{"identifier":"jane@example.com"}`)

	err := h.Login(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginHandler_PendingApproval(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().Login(gomock.Any(), "doc@example.com").Return(nil, apperrors.ErrPendingApproval)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/login", `{"identifier":"doc@example.com"}`)

	err := h.Login(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginHandler_MissingIdentifier(t *testing.T) {
	h, _ := setupHandlerTest(t)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/login", `{}`)

	err := h.Login(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOTPHandler_Success(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	resp := &models.AuthResponse{
		User:   &models.User{ID: uuid.New(), Email: "jane@example.com", IsVerified: true},
		Tokens: &models.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
	}
	mockUC.EXPECT().VerifyOTP(gomock.Any(), "jane@example.com", "123456").Return(resp, nil)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/verify-otp",
		`{"identifier":"jane@example.com","otp":"123456"}`)

	err := h.VerifyOTP(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access")
}

func TestVerifyOTPHandler_InvalidCode(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().VerifyOTP(gomock.Any(), "jane@example.com", "000000").
		Return(nil, apperrors.ErrInvalidOTP)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/verify-otp",
		`{"identifier":"jane@example.com","otp":"000000"}`)

	err := h.VerifyOTP(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResendOTPHandler_DeliveryFailure(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().ResendOTP(gomock.Any(), "jane@example.com").Return(apperrors.ErrOTPDelivery)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/resend-otp", `{"identifier":"jane@example.com"}`)

	err := h.ResendOTP(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRefreshTokenHandler_InvalidToken(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().RefreshToken(gomock.Any(), "stale-token").Return(nil, apperrors.ErrInvalidToken)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/refresh-token", `{"refresh_token":"stale-token"}`)

	err := h.RefreshToken(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGoogleLoginHandler_Success(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	resp := &models.AuthResponse{
		User:   &models.User{ID: uuid.New(), Email: "jane@example.com", IsVerified: true},
		Tokens: &models.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
	}
	mockUC.EXPECT().LoginWithGoogle(gomock.Any(), "google-token").Return(resp, nil)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/google", `{"id_token":"google-token"}`)

	err := h.GoogleLogin(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGoogleLoginHandler_MissingToken(t *testing.T) {
	h, _ := setupHandlerTest(t)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/google", `{}`)

	err := h.GoogleLogin(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileHandler(t *testing.T) {
	h, _ := setupHandlerTest(t)

	user := &models.User{ID: uuid.New(), Email: "jane@example.com"}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", user)

	err := h.Profile(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jane@example.com")
}

func TestProfileHandler_NoUserInContext(t *testing.T) {
	h, _ := setupHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	rec := httptest.NewRecorder()

	err := h.Profile(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
