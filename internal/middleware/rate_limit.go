package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"api-scaffold/config"
	pkgErrors "api-scaffold/pkg/errors"
	"api-scaffold/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const limiterTTL = 5 * time.Minute

// rateLimiter keeps one token bucket per client, evicting clients idle for
// longer than the TTL.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg config.RateLimitConfig) *rateLimiter {
	return newRateLimiterWithTTL(cfg, limiterTTL)
}

func newRateLimiterWithTTL(cfg config.RateLimitConfig, ttl time.Duration) *rateLimiter {
	maxClients := cfg.MaxClients
	if maxClients <= 0 {
		maxClients = 1000
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = max(cfg.RequestsPerMin/10, 1)
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, ttl),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		burst:    burst,
	}
}

// reserve takes a token for key. It returns 0 when the request may proceed,
// otherwise how long the client should wait.
func (rl *rateLimiter) reserve(key string) time.Duration {
	limiter := rl.limiter(key)

	now := time.Now()
	r := limiter.ReserveN(now, 1)
	if !r.OK() {
		return time.Minute
	}
	delay := r.DelayFrom(now)
	if delay > 0 {
		r.CancelAt(now)
	}
	return delay
}

// limiter returns the bucket for key, creating it on first use. Every hit
// re-adds the entry so its TTL counts from the last request, not the first.
func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
	}
	rl.limiters.Add(key, limiter)
	return limiter
}

// RateLimit rejects clients that exceed the configured request rate with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		if wait := m.limiter.reserve(c.ClientIP()); wait > 0 {
			retryAfter := int(math.Ceil(wait.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			response.Error(c, pkgErrors.NewRateLimit("Too many requests",
				pkgErrors.WithField("retry_after", retryAfter),
			))
			return
		}
		c.Next()
	}
}
