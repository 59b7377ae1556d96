package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/reveda-health/reveda-server/internal/pkg/database"
	"github.com/reveda-health/reveda-server/internal/pkg/middleware"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
	httpHandler "github.com/reveda-health/reveda-server/services/auth/handler/http"
)

// Handler coordinates the HTTP surface of the authentication service
type Handler struct {
	authHandler *httpHandler.AuthHandler
	gate        *AccessGate
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewHandler creates and initializes the route handler
func NewHandler(
	authHandler *httpHandler.AuthHandler,
	gate *AccessGate,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		gate:        gate,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the authentication routes. OTP-sending routes
// carry a rate limiter to blunt enumeration and delivery abuse.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	otpLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient.Client,
		Key:         "ratelimit:otp",
		Limit:       h.cfg.RateLimit.Limit,
		Period:      time.Duration(h.cfg.RateLimit.PeriodSeconds) * time.Second,
	})

	authGroup := e.Group("/auth")
	authGroup.POST("/signup", h.authHandler.Signup, otpLimiter)
	authGroup.POST("/login", h.authHandler.Login, otpLimiter)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)
	authGroup.POST("/resend-otp", h.authHandler.ResendOTP, otpLimiter)
	authGroup.POST("/refresh-token", h.authHandler.RefreshToken)
	authGroup.POST("/google", h.authHandler.GoogleLogin)

	// Protected routes exercise both gates: Authenticate re-fetches the
	// user per request; RequireVerification checks live store state.
	authGroup.GET("/profile", h.authHandler.Profile, h.gate.Authenticate)
	authGroup.GET("/me", h.authHandler.Profile, h.gate.Authenticate, h.gate.RequireVerification)
}
