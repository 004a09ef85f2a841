package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit caps every client at App.MaxRequests per second.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}

// PaymentRateLimiter guards the payment endpoints with a per-minute budget.
func (m *Middlewares) PaymentRateLimiter() *RateLimiter {
	payment := m.InternalConfig.Payment
	return NewRateLimiter(payment.RateLimitBurst, time.Minute/time.Duration(max(payment.RateLimitPerMinute, 1)), payment.RateLimitBlockAfter, m.Log)
}
