package http

import (
	"net/http"
	"slices"

	"github.com/fayrashop/api/internal/apperrors"
	"github.com/fayrashop/api/internal/logger"
)

// withRoles enforces the route's required-role set against the principal's
// role name. An empty set admits any authenticated principal. Role names
// alone decide admission here; the principal's permission snapshot is for
// domain logic, never for the route check.
func (h *Handler) withRoles(spec RouteSpec, next http.Handler) http.Handler {
	if len(spec.RequiredRoles) == 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		principal, ok := principalFromRequest(r)
		if !ok {
			// Reachable only through a registration mistake: roles always
			// run behind withAuth.
			log.Error().Str("route", spec.Name).Msg("role check without authenticated principal")
			h.writeError(w, r, apperrors.NotAllowed.WithMessage("User not authenticated"))
			return
		}

		if !slices.Contains(spec.RequiredRoles, principal.RoleName) {
			log.Warn().
				Str("route", spec.Name).
				Str("role", principal.RoleName).
				Msg("principal role not in required set")
			h.writeError(w, r, apperrors.NotAllowed.WithMessage("Insufficient permissions"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
