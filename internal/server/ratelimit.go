package server

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiter implements per-client-IP rate limiting
type ClientLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rateVal  rate.Limit
	burst    int
}

// NewClientLimiter creates a limiter giving each client IP its own bucket.
// A zero or negative rate disables limiting.
func NewClientLimiter(requestsPerSecond float64, burst int) *ClientLimiter {
	if burst <= 0 {
		burst = 5
	}

	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		rateVal:  rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// Allow checks if a request from the given client is allowed without waiting
func (l *ClientLimiter) Allow(clientIP string) bool {
	if l.rateVal <= 0 {
		return true
	}
	return l.getLimiter(clientIP).Allow()
}

func (l *ClientLimiter) getLimiter(clientIP string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[clientIP]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := l.limiters[clientIP]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.rateVal, l.burst)
	l.limiters[clientIP] = limiter

	return limiter
}

// Middleware rejects over-limit requests with 429 before any body is read.
func (l *ClientLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientIP(r)) {
			writeJSON(w, http.StatusTooManyRequests, errorBody{Error: "Too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
