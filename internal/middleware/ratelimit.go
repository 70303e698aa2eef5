package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgResponse "smart-todo-backend/pkg/response"
)

// rateLimiter holds per-client limiters with auto-expiring entries.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max unique clients tracked
			nil,           // no eviction callback
			time.Minute*5, // idle entries expire
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit limits requests per client IP. It fronts the parse endpoint,
// which fans out to a paid remote model on every call.
func (m Middleware) RateLimit(requestsPerMin int) gin.HandlerFunc {
	rl := newRateLimiter(requestsPerMin)

	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s", c.ClientIP())
			pkgResponse.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
