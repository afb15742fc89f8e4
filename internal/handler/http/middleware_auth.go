package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fayrashop/api/internal/apperrors"
	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/internal/token"
	"github.com/fayrashop/api/models"
)

// withAuth enforces bearer-token authentication. It extracts the token
// from the "Authorization" header, verifies it against the access class,
// and attaches the resulting models.Principal to the request context.
//
// Rejections all flow through the central error translator:
//   - missing or malformed header → apperrors.Unauthorized (60006);
//   - expired token → apperrors.ExpiredToken (60003);
//   - any other verification failure → apperrors.InvalidToken (60004).
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.writeError(w, r, apperrors.Unauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.writeError(w, r, apperrors.Unauthorized)
			return
		}

		claims, err := h.codec.Verify(token.Access, tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ExpiredToken) {
				log.Err(err).Msg("token expired")
				h.writeError(w, r, apperrors.ExpiredToken)
				return
			}
			log.Err(err).Msg("error occurred during token verification")
			h.writeError(w, r, apperrors.InvalidToken)
			return
		}

		// Attach the caller's identity so downstream stages never
		// re-parse the token.
		principal := models.PrincipalFromClaims(claims)
		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), principal)))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form
// "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
