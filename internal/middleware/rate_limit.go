package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/deppfellow/signifylearn/internal/config"
	"github.com/deppfellow/signifylearn/internal/errs"
	"github.com/deppfellow/signifylearn/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "signifylearn:ratelimit:"

// Counter increments a key inside a fixed window and reports the new count
// and the time left in the window.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RedisCounter implements Counter with INCR and PEXPIRE.
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter wraps a redis client.
func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

// Incr implements Counter. The window starts at the first hit.
func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, errors.Wrap(err, "incrementing rate limit counter")
	}

	remaining := ttl.Val()
	if remaining < 0 {
		if err := r.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, errors.Wrap(err, "setting rate limit window")
		}
		remaining = window
	}

	return incr.Val(), remaining, nil
}

// RateLimitMiddleware enforces a per-ip request budget on the routes it is
// attached to. Without redis, or with a zero budget, it lets everything through.
type RateLimitMiddleware struct {
	server  *server.Server
	counter Counter
	limits  config.RateLimitConfig
}

// NewRateLimitMiddleware builds the limiter from the server's redis client.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	var counter Counter
	if s.Redis != nil {
		counter = NewRedisCounter(s.Redis)
	}
	return NewRateLimitMiddlewareWithCounter(s, counter)
}

// NewRateLimitMiddlewareWithCounter is NewRateLimitMiddleware with an explicit counter.
func NewRateLimitMiddlewareWithCounter(s *server.Server, counter Counter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server:  s,
		counter: counter,
		limits:  s.Config.RateLimit,
	}
}

// Enabled reports whether requests are actually being limited.
func (r *RateLimitMiddleware) Enabled() bool {
	return r.counter != nil && r.limits.Enabled()
}

// Limit returns the middleware. Counter failures are logged and the request
// is let through.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !r.Enabled() {
			return next
		}

		return func(c echo.Context) error {
			key := rateLimitKeyPrefix + c.RealIP()

			count, remaining, err := r.counter.Incr(c.Request().Context(), key, r.limits.Window)
			if err != nil {
				GetLogger(c).Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(r.limits.Requests))
			left := int64(r.limits.Requests) - count
			if left < 0 {
				left = 0
			}
			header.Set("X-RateLimit-Remaining", strconv.FormatInt(left, 10))

			if count > int64(r.limits.Requests) {
				retryAfter := strconv.Itoa(int((remaining + time.Second - 1) / time.Second))
				header.Set("Retry-After", retryAfter)
				r.RecordRateLimitHit(c.Path())
				return errs.NewTooManyRequestsError(retryAfter)
			}

			return next(c)
		}
	}
}

// RecordRateLimitHit records a New Relic custom event for a rejected request.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
