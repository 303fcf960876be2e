package auth

import (
	"net/http"
	"sync"
	"time"

	"github.com/ecoechos/backend/pkg/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// maxLimiters bounds the number of tracked clients. When it is
// exceeded, all limiters are reset.
const maxLimiters = 10000

// Limiter throttles requests per client IP with a token bucket.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewLimiter allows perMinute requests per minute and client.
// The full minute can be used as burst.
func NewLimiter(perMinute int) *Limiter {
	if perMinute < 1 {
		perMinute = 1
	}

	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

// Allow reports whether the client may make another request.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= maxLimiters {
			log.Info().Int("count", len(l.limiters)).Msg("resetting login rate limiters")
			l.limiters = make(map[string]*rate.Limiter)
		}

		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// Middleware responds with 429 when the client exceeds its rate.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			log.Warn().Str("request-id", requestid.Get(c)).Str("ip", c.ClientIP()).Msg("login rate limit exceeded")
			c.Header("Retry-After", "60")
			httputil.NewError(c, http.StatusTooManyRequests, ErrTooManyRequests)
			return
		}

		c.Next()
	}
}
