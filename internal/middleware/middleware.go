package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	pkgLog "personal-task-planner/pkg/log"
	"personal-task-planner/pkg/response"
)

// RequestID assigns a request ID to every request, honoring an incoming
// X-Request-ID header, and threads it through the context for log correlation.
func (m *Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("request_id", reqID)
		c.Header("X-Request-ID", reqID)

		ctx := pkgLog.ContextWithRequestID(c.Request.Context(), reqID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RateLimit rejects requests above the configured per-client rate with 429.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.ratePerMin <= 0 {
			c.Next()
			return
		}

		if !m.limiterFor(c.ClientIP()).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// limiterFor returns the token bucket for one client IP, creating it on first use.
func (m *Middleware) limiterFor(clientIP string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, found := m.limiters[clientIP]
	if !found {
		limiter = rate.NewLimiter(rate.Limit(float64(m.ratePerMin)/60.0), m.ratePerMin)
		m.limiters[clientIP] = limiter
	}
	return limiter
}
