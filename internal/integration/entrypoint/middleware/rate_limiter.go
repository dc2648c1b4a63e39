// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/moneydiary/backend/internal/domain/error"
	"github.com/moneydiary/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	rateLimitKeyPrefix = "ratelimit:login:"
)

// RateLimiter provides IP-based rate limiting backed by Redis. Counters use
// a fixed window: the first attempt from an IP creates a key with a TTL and
// subsequent attempts increment it until the key expires.
type RateLimiter struct {
	client         *redis.Client
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{
		client:         client,
		maxAttempts:    defaultMaxAttempts,
		windowDuration: defaultWindowDuration,
	}
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		client:         client,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting in E2E mode or test environment
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.allow(c, clientIP)
		if err != nil {
			// Redis being down must not lock users out of login.
			slog.Warn("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow increments the counter for the given key and reports whether the
// request falls within the window's attempt budget.
func (rl *RateLimiter) allow(c *gin.Context, key string) (bool, error) {
	ctx := c.Request.Context()
	redisKey := rateLimitKeyPrefix + key

	attempts, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("incrementing rate limit counter: %w", err)
	}

	// The first attempt in a window starts the expiry clock.
	if attempts == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			return false, fmt.Errorf("setting rate limit window: %w", err)
		}
	}

	return attempts <= int64(rl.maxAttempts), nil
}
