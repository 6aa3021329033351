package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	authDomain "github.com/xenosis/employees/internal/auth/domain"
	apperrors "github.com/xenosis/employees/internal/errors"
	"github.com/xenosis/employees/internal/httputil"
)

// rateLimiterStore holds one token bucket per key with automatic cleanup.
type rateLimiterStore[K comparable] struct {
	limiters sync.Map // map[K]*rateLimiterEntry
	rps      float64
	burst    int
}

// rateLimiterEntry holds a rate limiter and last access time for cleanup.
type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// newRateLimiterStore returns a store whose idle buckets are dropped every five
// minutes once unused for an hour. Cleanup stops when ctx is cancelled.
func newRateLimiterStore[K comparable](ctx context.Context, rps float64, burst int) *rateLimiterStore[K] {
	store := &rateLimiterStore[K]{rps: rps, burst: burst}
	go store.cleanupStale(ctx, 5*time.Minute, time.Hour)
	return store
}

// RateLimitMiddleware enforces per-employee rate limiting on authenticated requests.
//
// MUST be used after AuthenticationMiddleware. Each principal gets an
// independent token bucket.
//
// Returns 429 Too Many Requests with a Retry-After header when the bucket is empty.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newRateLimiterStore[int64](ctx, rps, burst)

	return func(c *gin.Context) {
		principal, ok := authDomain.PrincipalFromContext(c.Request.Context())
		if !ok {
			logger.Error("rate limit middleware: no authenticated principal in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !store.allow(c, principal.ID, "Too many requests. Please retry after the specified delay.") {
			logger.Debug("rate limit exceeded", slog.Int64("employee_id", principal.ID))
			return
		}

		c.Next()
	}
}

// allow takes a token from key's bucket. When none is left it writes the 429
// response, aborts the chain and returns false.
func (s *rateLimiterStore[K]) allow(c *gin.Context, key K, message string) bool {
	limiter := s.getLimiter(key)
	if limiter.Allow() {
		return true
	}

	reservation := limiter.Reserve()
	retryAfter := int(reservation.Delay().Seconds())
	reservation.Cancel()

	c.Header("Retry-After", strconv.Itoa(retryAfter))
	c.JSON(http.StatusTooManyRequests, gin.H{
		"error":   "rate_limit_exceeded",
		"message": message,
	})
	c.Abort()
	return false
}

// getLimiter retrieves or creates the rate limiter of key.
func (s *rateLimiterStore[K]) getLimiter(key K) *rate.Limiter {
	now := time.Now()
	val, loaded := s.limiters.LoadOrStore(key, &rateLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	})
	entry := val.(*rateLimiterEntry)
	if loaded {
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
	}
	return entry.limiter
}

// removeStale drops limiters last used before threshold.
func (s *rateLimiterStore[K]) removeStale(threshold time.Time) {
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*rateLimiterEntry)
		entry.mu.Lock()
		stale := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if stale {
			s.limiters.Delete(key)
		}
		return true
	})
}

// cleanupStale periodically removes limiters idle for longer than maxIdle.
func (s *rateLimiterStore[K]) cleanupStale(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.removeStale(time.Now().Add(-maxIdle))
		}
	}
}
