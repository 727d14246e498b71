package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"github.com/studyhub/search-backend/internal/ratelimit"
)

// RateLimit returns middleware that gates requests through the given
// fixed-window limiter, keyed by client network address. Denied requests
// receive 429 with a Retry-After hint of the window length.
func RateLimit(limiter *ratelimit.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(r.Context(), clientAddr(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(int(limiter.Window().Seconds())))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
					"success": false,
					"error":   "Too many requests, please slow down",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientAddr extracts the client host from RemoteAddr, dropping the
// ephemeral port so one client maps to one limiter key.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
