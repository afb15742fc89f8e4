package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets the minimum environment for a valid config.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_ACCESS_SECRET", "env-access-secret")
	t.Setenv("AUTH_REFRESH_SECRET", "env-refresh-secret")
	t.Setenv("STORAGE_DATABASE_URI", "postgres://test")
}

func TestGetConfig_DefaultsApplied(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.AccessTokenTTL.Std())
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.RefreshTokenTTL.Std())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 10, cfg.RateLimit.Limit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window.Std())
	assert.Equal(t, "fayrashop-api", cfg.App.Name)
}

func TestGetConfig_EnvOverridesDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL", "2h")
	t.Setenv("RATE_LIMIT_LIMIT", "5")

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 2*time.Hour, cfg.Auth.AccessTokenTTL.Std())
	assert.Equal(t, 5, cfg.RateLimit.Limit)
}

func TestGetConfig_JSONFileMergedUnderEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_ADDRESS", ":9999")

	path := filepath.Join(t.TempDir(), "config.json")
	file := map[string]any{
		"server":     map[string]any{"http_address": ":7777", "read_timeout": "30s"},
		"rate_limit": map[string]any{"limit": 42},
	}
	raw, err := json.Marshal(file)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	t.Setenv("CONFIG", path)

	cfg, err := GetConfig()
	require.NoError(t, err)

	// env wins over the file
	assert.Equal(t, ":9999", cfg.Server.HTTPAddress)
	// the file wins over defaults
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout.Std())
	assert.Equal(t, 42, cfg.RateLimit.Limit)
}

func TestGetConfig_MissingSecretsRejected(t *testing.T) {
	t.Setenv("STORAGE_DATABASE_URI", "postgres://test")

	_, err := GetConfig()
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestGetConfig_IdenticalSecretsRejected(t *testing.T) {
	t.Setenv("AUTH_ACCESS_SECRET", "same")
	t.Setenv("AUTH_REFRESH_SECRET", "same")
	t.Setenv("STORAGE_DATABASE_URI", "postgres://test")

	_, err := GetConfig()
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestGetConfig_MissingDSNRejected(t *testing.T) {
	t.Setenv("AUTH_ACCESS_SECRET", "env-access-secret")
	t.Setenv("AUTH_REFRESH_SECRET", "env-refresh-secret")

	_, err := GetConfig()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestDuration_UnmarshalJSONForms(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, d.Std())

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, d.Std())

	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}
