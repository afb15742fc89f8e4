package http

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/fayrashop/api/internal/apperrors"
)

// withRateLimit enforces the route's fixed-window budget, keyed by client
// IP. The standard X-RateLimit-* headers are set on every response that
// passed through the limiter; a rejected request answers 429 through the
// same error translator as every other failure.
func (h *Handler) withRateLimit(spec RouteSpec, next http.Handler) http.Handler {
	rate := h.defaultRate
	if spec.RateLimit != nil {
		rate = *spec.RateLimit
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Budgets are per route per client, so a burst against one
		// endpoint never exhausts another endpoint's window.
		key := spec.Name + "|" + clientIP(r)
		decision := h.limiter.Allow(key, rate.Limit, rate.Window)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			h.writeError(w, r, apperrors.TooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the caller's address, preferring the first entry of
// X-Forwarded-For when a proxy added one.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first, _, ok := strings.Cut(forwarded, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
