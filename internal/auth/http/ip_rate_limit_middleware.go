package http

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// IPRateLimitMiddleware enforces per-IP rate limiting ahead of authentication.
//
// Every /v1 request carries Basic credentials and costs a password hash
// verification, whether or not the email exists. Place this middleware before
// AuthenticationMiddleware so guessing and hash-CPU exhaustion from one address
// are throttled before any verify runs.
//
// c.ClientIP honours X-Forwarded-For and X-Real-IP according to the engine's
// trusted proxy settings.
func IPRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newRateLimiterStore[string](ctx, rps, burst)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		if !store.allow(c, clientIP, "Too many requests from this IP. Please retry after the specified delay.") {
			logger.Debug("ip rate limit exceeded", slog.String("client_ip", clientIP))
			return
		}

		c.Next()
	}
}
