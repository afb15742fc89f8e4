// Package token implements the signed-token codec used for session
// credentials. Two token classes exist, access (short TTL) and refresh
// (long TTL), each signed with its own HMAC-SHA256 secret. Tokens are
// self-contained: verification requires no server-side state.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fayrashop/api/internal/apperrors"
	"github.com/fayrashop/api/models"
)

// Class selects which secret and TTL a codec operation applies.
type Class int

const (
	// Access is the short-lived token class presented on every request.
	Access Class = iota
	// Refresh is the long-lived token class exchanged for a fresh pair.
	Refresh
)

// Config carries the signing material and lifetimes for both token classes.
type Config struct {
	// AccessSecret and RefreshSecret are independent HMAC keys. A token of
	// one class never verifies against the other class's secret.
	AccessSecret  string
	RefreshSecret string

	// AccessTTL and RefreshTTL are the lifetimes of newly issued tokens.
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Issuer is embedded as the "iss" claim and checked during Verify.
	Issuer string

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Codec issues and verifies signed identity tokens. It is a pure function
// of (payload, secret, clock): no side effects, safe for concurrent use.
type Codec struct {
	cfg Config
	now func() time.Time
}

// NewCodec validates cfg and constructs a Codec.
func NewCodec(cfg Config) (*Codec, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, errors.New("token: both class secrets are required")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token: both class TTLs must be positive")
	}
	if cfg.Issuer == "" {
		return nil, errors.New("token: issuer is required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Codec{cfg: cfg, now: now}, nil
}

// Issue produces a signed token of the given class for the user. The token
// embeds the user's id, email, role name, and a permission snapshot, with an
// absolute expiry of now + class TTL.
func (c *Codec) Issue(class Class, user models.User) (string, error) {
	now := c.now()

	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.cfg.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl(class))),
		},
		Email: user.Email,
		Role:  user.RoleName(),
	}
	if user.Role != nil {
		claims.Permissions = user.Role.Permissions
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret(class))
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", className(class), err)
	}

	return signed, nil
}

// Verify checks the signature, issuer, and expiry of raw against the given
// class's secret and returns the embedded claims.
//
// Failure kinds are distinguishable by the caller:
//   - apperrors.ExpiredToken: signature valid but past its expiry;
//   - apperrors.InvalidToken: signature mismatch, malformed structure, or
//     any other decode failure.
func (c *Codec) Verify(class Class, raw string) (*models.TokenClaims, error) {
	claims := &models.TokenClaims{}

	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return c.secret(class), nil
		},
		jwt.WithIssuer(c.cfg.Issuer),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %s token past expiry", apperrors.ExpiredToken, className(class))
		}
		return nil, fmt.Errorf("%w: %s", apperrors.InvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", apperrors.InvalidToken)
	}

	return claims, nil
}

// IssuePair issues an access and a refresh token for the user.
func (c *Codec) IssuePair(user models.User) (models.TokenPair, error) {
	access, err := c.Issue(Access, user)
	if err != nil {
		return models.TokenPair{}, err
	}

	refresh, err := c.Issue(Refresh, user)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (c *Codec) secret(class Class) []byte {
	if class == Refresh {
		return []byte(c.cfg.RefreshSecret)
	}
	return []byte(c.cfg.AccessSecret)
}

func (c *Codec) ttl(class Class) time.Duration {
	if class == Refresh {
		return c.cfg.RefreshTTL
	}
	return c.cfg.AccessTTL
}

func className(class Class) string {
	if class == Refresh {
		return "refresh"
	}
	return "access"
}
