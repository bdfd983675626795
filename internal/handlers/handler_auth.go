package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_account_app/internal/middleware"
	"github.com/SscSPs/bank_account_app/internal/utils"
	"github.com/SscSPs/bank_account_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler issues JWTs for configured API client credentials.
type authHandler struct {
	cfg *config.Config
}

// tokenRequest defines the client-credentials input for the token endpoint.
type tokenRequest struct {
	ClientID     string `json:"clientId" binding:"required"`
	ClientSecret string `json:"clientSecret" binding:"required"`
}

// tokenResponse wraps an issued bearer token.
type tokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// defaultAuthRateLimit bounds token requests when AUTH_RATE_LIMIT is unusable.
const defaultAuthRateLimit = "5-M"

// registerAuthRoutes sets up the token endpoint, rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config) {
	h := &authHandler{cfg: cfg}

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		slog.Warn("Invalid AUTH_RATE_LIMIT value, falling back to default",
			slog.String("value", cfg.AuthRateLimit),
			slog.String("default", defaultAuthRateLimit),
			slog.String("error", err.Error()),
		)
		rate, _ = limiter.NewRateFromFormatted(defaultAuthRateLimit)
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/auth", middleware.RateLimit(ipLimiter))
	auth.POST("/token", h.issueToken)
}

// issueToken godoc
// @Summary Issue an API token
// @Description Exchanges configured client credentials for a bearer JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body tokenRequest true "Client credentials"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Invalid client credentials"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /auth/token [post]
func (h *authHandler) issueToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for issueToken", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if !h.credentialsValid(req) {
		logger.Warn("Invalid client credentials", slog.String("client_id", req.ClientID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid client credentials"})
		return
	}

	token, err := utils.GenerateJWT(req.ClientID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	logger.Info("Token issued", slog.String("client_id", req.ClientID))
	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.cfg.JWTExpiryDuration.Seconds()),
	})
}

func (h *authHandler) credentialsValid(req tokenRequest) bool {
	idMatch := subtle.ConstantTimeCompare([]byte(req.ClientID), []byte(h.cfg.APIClientID)) == 1
	secretMatch := subtle.ConstantTimeCompare([]byte(req.ClientSecret), []byte(h.cfg.APIClientSecret)) == 1
	return idMatch && secretMatch
}
