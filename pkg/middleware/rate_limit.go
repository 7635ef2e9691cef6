package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"wildsafari/pkg/utils"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimiter keeps one token bucket per client IP. Buckets of clients
// that went quiet are dropped by PruneIdle.
type ClientRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

func NewClientRateLimiter(perMinute, burst int) *ClientRateLimiter {
	if perMinute <= 0 {
		perMinute = 30
	}
	if burst <= 0 {
		burst = 1
	}
	return &ClientRateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(perMinute) / 60,
		burst:   burst,
		now:     time.Now,
	}
}

func (l *ClientRateLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = cl
	}
	cl.lastSeen = l.now()
	return cl.limiter
}

// RefillTime is how long an unused bucket takes to fill up again. A client
// idle for longer is indistinguishable from a new one.
func (l *ClientRateLimiter) RefillTime() time.Duration {
	return time.Duration(float64(l.burst) / float64(l.limit) * float64(time.Second))
}

// PruneIdle drops clients not seen for at least idle and returns how many
// were removed. idle is raised to RefillTime so pruning never resets a
// client that is still being throttled.
func (l *ClientRateLimiter) PruneIdle(idle time.Duration) int {
	if refill := l.RefillTime(); idle < refill {
		idle = refill
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	removed := 0
	for key, cl := range l.clients {
		if !cl.lastSeen.After(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

func (l *ClientRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.limiterFor(c.ClientIP()).Allow() {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests, please slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
