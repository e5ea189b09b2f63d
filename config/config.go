// Package config loads app configuration from a config file and JOBHUB_*
// environment overrides using Viper.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// ServerAddr is the address the HTTP server listens on (e.g. :9000).
	ServerAddr string `mapstructure:"server_addr"`
	// DSN is the sqlite data source (e.g. file:jobhub.db or :memory:).
	DSN string `mapstructure:"dsn"`
	// UploadDir is where avatar and job images are written.
	UploadDir string `mapstructure:"upload_dir"`

	SigningKey string `mapstructure:"signing_key"`
	// SigningMethod names the JWT algorithm; only HS256 is issued.
	SigningMethod string `mapstructure:"signing_method"`
	// TokenExpiration is the token lifetime in hours.
	TokenExpiration int    `mapstructure:"token_expiration"`
	ContextKey      string `mapstructure:"context_key"`
	TokenLookup     string `mapstructure:"token_lookup"`
	AuthScheme      string `mapstructure:"auth_scheme"`
	Issuer          string `mapstructure:"issuer"`
	// Audience is a comma-separated list of aud claim values.
	Audience string `mapstructure:"audience"`
}

// Load reads config.yaml (if present) then applies JOBHUB_* env overrides.
// A missing file is fine; a missing signing key is not.
func Load(paths ...string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.SetEnvPrefix("JOBHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// an empty default registers the key so AutomaticEnv can see it
	v.SetDefault("signing_key", "")
	v.SetDefault("server_addr", ":9000")
	v.SetDefault("dsn", "file:jobhub.db?cache=shared&_pragma=journal_mode(WAL)")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("signing_method", "HS256")
	v.SetDefault("token_expiration", 24)
	v.SetDefault("context_key", "user")
	v.SetDefault("token_lookup", "header:Authorization")
	v.SetDefault("auth_scheme", "Bearer")
	v.SetDefault("issuer", "jobhub")
	v.SetDefault("audience", "jobhub-api")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.SigningKey == "" {
		return nil, errors.New("config: signing_key must be set")
	}

	if cfg.TokenExpiration <= 0 {
		return nil, errors.New("config: token_expiration must be positive")
	}

	return &cfg, nil
}

func (c *Config) GetSigningKey() string {
	return c.SigningKey
}

func (c *Config) GetSigningMethod() string {
	return c.SigningMethod
}

func (c *Config) GetContextKey() string {
	return c.ContextKey
}

func (c *Config) GetTokenExpiration() int {
	return c.TokenExpiration
}

func (c *Config) GetTokenLookup() string {
	return c.TokenLookup
}

func (c *Config) GetAuthScheme() string {
	return c.AuthScheme
}

func (c *Config) GetIssuer() string {
	return c.Issuer
}

// GetAudience returns aud claim values from the comma-separated config.
func (c *Config) GetAudience() []string {
	if c == nil || c.Audience == "" {
		return nil
	}
	parts := strings.Split(c.Audience, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
