package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL = 10 * time.Minute
	sweepInterval  = time.Minute
)

var errRateLimited = errs.New("rate limit exceeded")

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

type rateLimiter struct {
	limiters  sync.Map // map[string]*limiterEntry
	cfg       config.RateLimitConfig
	clock     clock.Clock
	lastSweep atomic.Int64
}

func newRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *rateLimiter {
	return &rateLimiter{cfg: cfg, clock: clk}
}

func (l *rateLimiter) get(key string) *rate.Limiter {
	now := l.clock.Now()
	l.sweep(now)

	if v, ok := l.limiters.Load(key); ok {
		e := v.(*limiterEntry)
		e.lastSeen.Store(now.UnixNano())
		return e.lim
	}

	burst := l.cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	e := &limiterEntry{lim: rate.NewLimiter(rate.Limit(l.cfg.RPS), burst)}
	e.lastSeen.Store(now.UnixNano())
	actual, _ := l.limiters.LoadOrStore(key, e)
	return actual.(*limiterEntry).lim
}

// sweep drops limiters idle for longer than limiterIdleTTL. At most one
// caller per sweepInterval walks the map.
func (l *rateLimiter) sweep(now time.Time) {
	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(sweepInterval) || !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	cutoff := now.Add(-limiterIdleTTL).UnixNano()
	l.limiters.Range(func(k, v any) bool {
		if v.(*limiterEntry).lastSeen.Load() < cutoff {
			l.limiters.Delete(k)
		}
		return true
	})
}

func (l *rateLimiter) size() int {
	n := 0
	l.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// RateLimit keys callers by client IP. The identity header is unverified, so
// it cannot select the bucket.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	return rateLimit(newRateLimiter(cfg, clock.NewRealClock()))
}

func rateLimit(l *rateLimiter) gin.HandlerFunc {
	if l.cfg.RPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if !l.get(c.ClientIP()).Allow() {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
