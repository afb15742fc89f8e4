package http

import (
	"net/http"
	"time"
)

// RateConfig is a fixed-window throttle budget.
type RateConfig struct {
	Limit  int
	Window time.Duration
}

// RouteSpec declares the pipeline behavior of one route. Every route is
// registered with an explicit descriptor, so the authentication,
// authorization, throttling, and envelope decisions are visible in one
// place instead of being scattered across handlers.
type RouteSpec struct {
	// Name identifies the route in logs.
	Name string

	// Public disables the authentication and authorization stages.
	Public bool

	// RequiredRoles lists the role names allowed through the authorization
	// stage. Empty means any authenticated principal.
	RequiredRoles []string

	// SkipEnvelope bypasses the response envelope (non-JSON surfaces).
	SkipEnvelope bool

	// RateLimit overrides the default throttle budget. Nil uses the
	// handler-wide default.
	RateLimit *RateConfig
}

// endpointFunc is the shape of every route handler: return a value for the
// response normalizer or an error for the translator. Exactly one of the
// two paths runs; handlers never write to w themselves.
type endpointFunc func(w http.ResponseWriter, r *http.Request) (any, error)

// route assembles the per-route pipeline around fn:
// rate limit → authentication → authorization → handler → responder.
// Tracing, request logging, and panic recovery wrap the whole router in
// Init and are not repeated here.
func (h *Handler) route(spec RouteSpec, fn endpointFunc) http.HandlerFunc {
	handler := h.finalize(spec, fn)

	var next http.Handler = handler
	if !spec.Public {
		next = h.withAuth(h.withRoles(spec, next))
	}
	next = h.withRateLimit(spec, next)

	return next.ServeHTTP
}
