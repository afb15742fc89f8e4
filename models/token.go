package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the payload embedded in every issued token. It extends the
// standard registered claim set (sub, iss, iat, exp) with the identity
// attributes the pipeline needs to rebuild a Principal without a directory
// lookup: tokens are self-contained, stateless credentials.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email of the subject at issue time.
	Email string `json:"email"`

	// Role is the subject's role name at issue time. Role changes propagate
	// to a live session only when the token pair is refreshed.
	Role string `json:"role,omitempty"`

	// Permissions is the snapshot of the subject's role permissions at
	// issue time ("*" meaning all).
	Permissions []string `json:"permissions,omitempty"`
}

// TokenPair bundles the two token classes returned by authentication
// endpoints: a short-lived access token and a long-lived refresh token,
// each signed with its own secret.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Principal is the resolved caller identity attached to a request for its
// lifetime. It is created by the authentication middleware, read by the
// authorization middleware and downstream handlers, and discarded when the
// request ends. Immutable once attached; never persisted.
type Principal struct {
	ID          string
	Email       string
	RoleName    string
	Permissions []string
}

// HasPermission reports whether the principal's permission snapshot grants
// the given permission, honoring the "*" wildcard.
func (p Principal) HasPermission(permission string) bool {
	for _, perm := range p.Permissions {
		if perm == PermissionWildcard || perm == permission {
			return true
		}
	}
	return false
}

// PrincipalFromClaims builds the request-scoped identity from verified
// token claims.
func PrincipalFromClaims(claims *TokenClaims) Principal {
	return Principal{
		ID:          claims.Subject,
		Email:       claims.Email,
		RoleName:    claims.Role,
		Permissions: claims.Permissions,
	}
}
