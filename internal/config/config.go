// Package config loads and validates the application configuration.
//
// Values are merged from three sources, in order of precedence:
// environment variables, an optional JSON file (pointed to by the CONFIG
// environment variable), and built-in defaults. Struct tags drive both the
// env mapping (caarlos0/env) and the JSON mapping.
package config

import (
	"encoding/json"
	"time"
)

// Config is the top-level configuration container for the fayrashop API.
type Config struct {
	// App holds application identity settings (name, version, environment).
	App App `envPrefix:"APP_" json:"app,omitempty"`

	// Auth holds token secrets, lifetimes, and the password hashing cost.
	Auth Auth `envPrefix:"AUTH_" json:"auth,omitempty"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_" json:"server,omitempty"`

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"STORAGE_" json:"storage,omitempty"`

	// RateLimit holds the default request-throttling window and budget.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_" json:"rate_limit,omitempty"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// populated via the CONFIG environment variable. When non-empty, the
	// file is parsed and merged underneath the environment values.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App identifies the running application.
type App struct {
	Name        string `env:"NAME" json:"name,omitempty"`
	Version     string `env:"VERSION" json:"version,omitempty"`
	Environment string `env:"ENVIRONMENT" json:"environment,omitempty"`
}

// Auth configures the token codec and credential hashing.
type Auth struct {
	// AccessSecret and RefreshSecret sign the two token classes. They must
	// be distinct, non-empty values.
	AccessSecret  string `env:"ACCESS_SECRET" json:"access_secret,omitempty"`
	RefreshSecret string `env:"REFRESH_SECRET" json:"refresh_secret,omitempty"`

	// AccessTokenTTL and RefreshTokenTTL are the token lifetimes.
	AccessTokenTTL  Duration `env:"ACCESS_TOKEN_TTL" json:"access_token_ttl,omitempty"`
	RefreshTokenTTL Duration `env:"REFRESH_TOKEN_TTL" json:"refresh_token_ttl,omitempty"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	TokenIssuer string `env:"TOKEN_ISSUER" json:"token_issuer,omitempty"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" json:"bcrypt_cost,omitempty"`
}

// Server configures the HTTP listener.
type Server struct {
	HTTPAddress     string   `env:"ADDRESS" json:"http_address,omitempty"`
	ReadTimeout     Duration `env:"READ_TIMEOUT" json:"read_timeout,omitempty"`
	WriteTimeout    Duration `env:"WRITE_TIMEOUT" json:"write_timeout,omitempty"`
	ShutdownTimeout Duration `env:"SHUTDOWN_TIMEOUT" json:"shutdown_timeout,omitempty"`
}

// Storage configures the Postgres connection.
type Storage struct {
	DSN string `env:"DATABASE_URI" json:"dsn,omitempty"`
}

// RateLimit configures the default fixed-window throttle applied to every
// route that does not declare its own override.
type RateLimit struct {
	Limit  int      `env:"LIMIT" json:"limit,omitempty"`
	Window Duration `env:"WINDOW" json:"window,omitempty"`
}

// Duration is a wrapper around time.Duration that parses from strings like
// "1h30m" both in environment variables (TextUnmarshaler) and in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	parsed, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns the wrapped value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// validate checks that the final merged Config satisfies all invariants the
// application depends on at startup.
func (cfg *Config) validate() error {
	if cfg.Auth.AccessSecret == "" || cfg.Auth.RefreshSecret == "" {
		return ErrInvalidAuthConfigs
	}
	if cfg.Auth.AccessSecret == cfg.Auth.RefreshSecret {
		return ErrInvalidAuthConfigs
	}
	if cfg.Auth.AccessTokenTTL <= 0 || cfg.Auth.RefreshTokenTTL <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.RateLimit.Limit <= 0 || cfg.RateLimit.Window <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	return nil
}

// defaults returns the built-in fallback values merged underneath every
// other configuration source.
func defaults() *Config {
	return &Config{
		App: App{
			Name:        "fayrashop-api",
			Version:     "1.0.0",
			Environment: "development",
		},
		Auth: Auth{
			AccessTokenTTL:  Duration(7 * 24 * time.Hour),
			RefreshTokenTTL: Duration(30 * 24 * time.Hour),
			TokenIssuer:     "fayrashop-api",
			BcryptCost:      10,
		},
		Server: Server{
			HTTPAddress:     ":3000",
			ReadTimeout:     Duration(15 * time.Second),
			WriteTimeout:    Duration(15 * time.Second),
			ShutdownTimeout: Duration(10 * time.Second),
		},
		RateLimit: RateLimit{
			Limit:  10,
			Window: Duration(time.Minute),
		},
	}
}
