package http

import (
	"context"
	"net/http"

	"github.com/fayrashop/api/models"
)

type contextKey int

// principalCtxKey stores the authenticated models.Principal for the
// lifetime of a request.
const principalCtxKey contextKey = iota

// withPrincipal returns a copy of ctx carrying the principal.
func withPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// principalFromRequest returns the principal attached by the
// authentication middleware. The second result is false on public routes,
// where no authentication ran.
func principalFromRequest(r *http.Request) (models.Principal, bool) {
	p, ok := r.Context().Value(principalCtxKey).(models.Principal)
	return p, ok
}
