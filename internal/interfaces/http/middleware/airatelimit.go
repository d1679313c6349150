package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sips/internal/infrastructure/ratelimit"
	"sips/internal/shared/config"
	"sips/internal/shared/constants"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

// AIRateLimiter throttles model-backed endpoints per user. Limits are
// enforced over sliding windows so a burst cannot drain a whole day's quota
// check in one minute.
type AIRateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.LimitConfig
	logger  logger.Interface
}

func NewAIRateLimiter(limiter ratelimit.RateLimiter, cfg config.AIRateLimitConfig, logger logger.Interface) *AIRateLimiter {
	return &AIRateLimiter{
		limiter: limiter,
		config: ratelimit.LimitConfig{
			RequestsPerMinute: cfg.RequestsPerMinute,
			RequestsPerHour:   cfg.RequestsPerHour,
			RequestsPerDay:    cfg.RequestsPerDay,
		},
		logger: logger,
	}
}

// Limit must run after RequireAuth so the user ID is in the context.
func (rl *AIRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(constants.ContextKeyUserID)
		if userID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		key := fmt.Sprintf("user:%d", userID)
		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.config)
		if err != nil {
			// Rate limiting is best effort; a Redis outage must not take
			// the AI endpoints down with it.
			rl.logger.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "AI request limit reached, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
