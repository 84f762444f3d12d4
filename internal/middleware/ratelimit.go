package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"ems-backend/internal/respond"
)

const (
	tokenIssueLimit  = 10
	tokenIssueWindow = time.Minute
)

// Counter is a fixed-window hit counter.
type Counter interface {
	IncrWithTTL(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimitTokenIssue caps token requests per client IP. Counter errors let
// the request through.
func RateLimitTokenIssue(counter Counter, log *zap.Logger) func(http.Handler) http.Handler {
	return rateLimit(counter, log, "rl:jwt:", tokenIssueLimit, tokenIssueWindow)
}

func rateLimit(counter Counter, log *zap.Logger, prefix string, limit int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := prefix + clientIP(r)
			count, err := counter.IncrWithTTL(r.Context(), key, window)
			if err != nil {
				log.Warn("rate limit counter", zap.String("key", key), zap.Error(err))
			} else if count > limit {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				respond.Error(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
