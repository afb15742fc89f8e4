package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fayrashop/api/internal/apperrors"
	"github.com/fayrashop/api/models"
)

func testConfig() Config {
	return Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    24 * time.Hour,
		Issuer:        "fayrashop-test",
	}
}

func testUser() models.User {
	return models.User{
		ID:    "2f0c8a4e-1111-4ccc-9999-aaaaaaaaaaaa",
		Email: "ada@example.com",
		Role:  &models.Role{Name: models.RoleAdmin, Permissions: []string{"*"}},
	}
}

func TestNewCodec_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing access secret", func(c *Config) { c.AccessSecret = "" }},
		{"missing refresh secret", func(c *Config) { c.RefreshSecret = "" }},
		{"zero access ttl", func(c *Config) { c.AccessTTL = 0 }},
		{"negative refresh ttl", func(c *Config) { c.RefreshTTL = -time.Hour }},
		{"missing issuer", func(c *Config) { c.Issuer = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			_, err := NewCodec(cfg)
			assert.Error(t, err)
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codec, err := NewCodec(testConfig())
	require.NoError(t, err)

	user := testUser()
	raw, err := codec.Issue(Access, user)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := codec.Verify(Access, raw)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, []string{"*"}, claims.Permissions)
}

func TestCodec_ClassesUseDistinctSecrets(t *testing.T) {
	codec, err := NewCodec(testConfig())
	require.NoError(t, err)

	access, err := codec.Issue(Access, testUser())
	require.NoError(t, err)

	// an access token must never verify as a refresh token
	_, err = codec.Verify(Refresh, access)
	assert.ErrorIs(t, err, apperrors.InvalidToken)
	assert.NotErrorIs(t, err, apperrors.ExpiredToken)
}

func TestCodec_WrongSecretIsInvalidNeverExpired(t *testing.T) {
	cfg := testConfig()
	_, err := NewCodec(cfg)
	require.NoError(t, err)

	// issue an already-expired token, then verify with the wrong secret:
	// the signature failure must win over the expiry failure
	cfg.Now = func() time.Time { return time.Now().Add(-2 * cfg.AccessTTL) }
	expiredIssuer, err := NewCodec(cfg)
	require.NoError(t, err)

	raw, err := expiredIssuer.Issue(Access, testUser())
	require.NoError(t, err)

	other := testConfig()
	other.AccessSecret = "a-completely-different-secret"
	otherCodec, err := NewCodec(other)
	require.NoError(t, err)

	_, err = otherCodec.Verify(Access, raw)
	assert.ErrorIs(t, err, apperrors.InvalidToken)
	assert.NotErrorIs(t, err, apperrors.ExpiredToken)
}

func TestCodec_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	issued := time.Now()
	cfg.Now = func() time.Time { return issued }

	codec, err := NewCodec(cfg)
	require.NoError(t, err)

	raw, err := codec.Issue(Access, testUser())
	require.NoError(t, err)

	// still valid just before expiry
	cfg.Now = func() time.Time { return issued.Add(cfg.AccessTTL - time.Second) }
	beforeExpiry, err := NewCodec(cfg)
	require.NoError(t, err)
	_, err = beforeExpiry.Verify(Access, raw)
	assert.NoError(t, err)

	// expired at/after the deadline
	cfg.Now = func() time.Time { return issued.Add(cfg.AccessTTL + time.Second) }
	afterExpiry, err := NewCodec(cfg)
	require.NoError(t, err)
	_, err = afterExpiry.Verify(Access, raw)
	assert.ErrorIs(t, err, apperrors.ExpiredToken)
}

func TestCodec_MalformedToken(t *testing.T) {
	codec, err := NewCodec(testConfig())
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.e30."} {
		_, err := codec.Verify(Access, raw)
		assert.ErrorIs(t, err, apperrors.InvalidToken, "raw=%q", raw)
	}
}

func TestCodec_TamperedPayload(t *testing.T) {
	codec, err := NewCodec(testConfig())
	require.NoError(t, err)

	raw, err := codec.Issue(Access, testUser())
	require.NoError(t, err)

	tampered := raw[:len(raw)-4] + "AAAA"
	_, err = codec.Verify(Access, tampered)
	assert.ErrorIs(t, err, apperrors.InvalidToken)
}

func TestCodec_IssuePair(t *testing.T) {
	codec, err := NewCodec(testConfig())
	require.NoError(t, err)

	pair, err := codec.IssuePair(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	_, err = codec.Verify(Access, pair.AccessToken)
	assert.NoError(t, err)
	_, err = codec.Verify(Refresh, pair.RefreshToken)
	assert.NoError(t, err)
}
