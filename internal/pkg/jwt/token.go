package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/reveda-health/reveda-server/internal/pkg/apperrors"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
)

// Claims is the point-in-time snapshot embedded in both token types.
// IsVerified can go stale between refreshes; callers that need live
// verification state must re-fetch the user.
type Claims struct {
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"is_verified"`
	jwt.RegisteredClaims
}

// GenerateAccessToken mints a short-lived access token for the user.
func GenerateAccessToken(user *models.User, cfg models.JWTConfig) (string, error) {
	expiry := time.Duration(cfg.AccessExpiry) * time.Minute
	return generate(user, cfg.AccessSecret, expiry, cfg.Issuer)
}

// GenerateRefreshToken mints a longer-lived refresh token for the user.
func GenerateRefreshToken(user *models.User, cfg models.JWTConfig) (string, error) {
	expiry := time.Duration(cfg.RefreshExpiry) * time.Hour
	return generate(user, cfg.RefreshSecret, expiry, cfg.Issuer)
}

// GenerateTokenPair mints an access and refresh token together.
func GenerateTokenPair(user *models.User, cfg models.JWTConfig) (*models.TokenPair, error) {
	accessToken, err := GenerateAccessToken(user, cfg)
	if err != nil {
		return nil, err
	}
	refreshToken, err := GenerateRefreshToken(user, cfg)
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccessToken validates an access token and returns its claims.
func VerifyAccessToken(tokenString string, cfg models.JWTConfig) (*Claims, error) {
	return verify(tokenString, cfg.AccessSecret)
}

// VerifyRefreshToken validates a refresh token and returns its claims.
func VerifyRefreshToken(tokenString string, cfg models.JWTConfig) (*Claims, error) {
	return verify(tokenString, cfg.RefreshSecret)
}

func generate(user *models.User, secret string, expiry time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     user.ID,
		Email:      user.Email,
		IsVerified: user.IsVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// verify parses and validates a token against the given secret. Every
// failure mode (bad signature, malformed payload, expiry, wrong
// algorithm) collapses into ErrInvalidToken so callers cannot leak an
// expired-vs-tampered oracle to the client.
func verify(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
