package handlers

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"kindergarden/internal/security"
	"kindergarden/internal/service"
)

const adminCookieName = "admin_session"

// Middleware provides request guards shared across handlers
type Middleware struct {
	admin   *service.AdminService
	limiter *security.RateLimiter
	csrf    *security.CSRFGenerator
}

// NewMiddleware creates middleware backed by the admin service
func NewMiddleware(admin *service.AdminService, csrfSecret string) *Middleware {
	return &Middleware{
		admin:   admin,
		limiter: security.NewRateLimiter(30, time.Minute),
		csrf:    security.NewCSRFGenerator(csrfSecret),
	}
}

// RequireAdmin rejects requests without a valid admin session cookie
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(adminCookieName)
		if err != nil || cookie.Value == "" {
			respondError(w, http.StatusUnauthorized, "admin session required")
			return
		}
		if err := m.admin.VerifyToken(cookie.Value); err != nil {
			respondError(w, http.StatusUnauthorized, "admin session expired")
			return
		}
		next(w, r)
	}
}

// CSRFProtect requires the X-CSRF-Token header on state-changing admin
// requests. The token is derived from the session cookie, so it needs no
// server-side storage.
func (m *Middleware) CSRFProtect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(adminCookieName)
		if err != nil || !m.csrf.ValidateToken(cookie.Value, r.Header.Get("X-CSRF-Token")) {
			respondError(w, http.StatusForbidden, "invalid CSRF token")
			return
		}
		next(w, r)
	}
}

// CSRFToken returns the token the client must echo back, for the login response
func (m *Middleware) CSRFToken(sessionToken string) (string, error) {
	return m.csrf.GenerateToken(sessionToken)
}

// RateLimit throttles a handler per client IP
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.limiter.Allow(ip) {
			logrus.WithField("ip", ip).Warn("rate limit exceeded")
			respondError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next(w, r)
	}
}

// statusRecorder captures the response status for the request log
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// Logging wraps a handler with structured request logging
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
			"ip":       security.GetClientIP(r),
		}).Info("request")
	})
}
