package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var ErrRateLimited = errs.New("rate limit exceeded")

const (
	MessageTooManyRequests = "Trop de requêtes, veuillez réessayer plus tard."
	MessageTooManyBookings = "Trop de demandes de réservation. Veuillez réessayer plus tard ou nous contacter par téléphone."
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per client IP token bucket allowing `requests` per `window`.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	message  string
	now      func() time.Time
	lastGC   time.Time
}

func NewRateLimiter(requests int, window time.Duration, message string) *RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		idleTTL:  window,
		message:  message,
		now:      time.Now,
	}
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lim := l.get(c.ClientIP())
		res := lim.ReserveN(l.now(), 1)
		if delay := res.DelayFrom(l.now()); delay > 0 {
			res.CancelAt(l.now())
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			httperr.AbortWithError(c, http.StatusTooManyRequests, ErrRateLimited, l.message, nil)
			return
		}
		c.Next()
	}
}

func (l *RateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastGC) > l.idleTTL {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.idleTTL {
				delete(l.visitors, k)
			}
		}
		l.lastGC = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}
