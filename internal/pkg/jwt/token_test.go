package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reveda-health/reveda-server/internal/pkg/apperrors"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessExpiry:  15,
		RefreshExpiry: 168,
		Issuer:        "reveda-test",
	}
}

func testUser() *models.User {
	return &models.User{
		ID:         uuid.New(),
		Email:      "test@example.com",
		IsVerified: true,
	}
}

func TestGenerateTokenPair_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	user := testUser()

	pair, err := GenerateTokenPair(user, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	accessClaims, err := VerifyAccessToken(pair.AccessToken, cfg)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessClaims.UserID)
	assert.Equal(t, user.Email, accessClaims.Email)
	assert.True(t, accessClaims.IsVerified)
	assert.Equal(t, cfg.Issuer, accessClaims.Issuer)

	refreshClaims, err := VerifyRefreshToken(pair.RefreshToken, cfg)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.UserID)
}

func TestVerify_CrossSecretRejected(t *testing.T) {
	cfg := testJWTConfig()
	user := testUser()

	pair, err := GenerateTokenPair(user, cfg)
	require.NoError(t, err)

	// An access token must not validate as a refresh token and vice versa.
	_, err = VerifyRefreshToken(pair.AccessToken, cfg)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = VerifyAccessToken(pair.RefreshToken, cfg)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	user := testUser()

	token, err := GenerateAccessToken(user, cfg)
	require.NoError(t, err)

	otherCfg := cfg
	otherCfg.AccessSecret = "a-different-secret"

	_, err = VerifyAccessToken(token, otherCfg)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerify_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessExpiry = -1
	user := testUser()

	token, err := GenerateAccessToken(user, cfg)
	require.NoError(t, err)

	_, err = VerifyAccessToken(token, cfg)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	cfg := testJWTConfig()

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		_, err := VerifyAccessToken(token, cfg)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	}
}

func TestVerify_UnverifiedClaimCarried(t *testing.T) {
	cfg := testJWTConfig()
	user := testUser()
	user.IsVerified = false

	token, err := GenerateAccessToken(user, cfg)
	require.NoError(t, err)

	claims, err := VerifyAccessToken(token, cfg)
	require.NoError(t, err)
	assert.False(t, claims.IsVerified)
}
