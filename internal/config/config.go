// Package config loads application configuration from an optional YAML file
// with LUNORA_-prefixed environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Cycle    CycleConfig    `mapstructure:"cycle"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	CookieSecure bool   `mapstructure:"cookie_secure"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SecretKey string        `mapstructure:"secret_key"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type CycleConfig struct {
	Timezone string `mapstructure:"timezone"`
}

const insecureSecretPlaceholder = "change_me_in_production"

// Load reads configuration from the given file (optional) and the
// environment. Env vars win over file values: LUNORA_AUTH_SECRET_KEY,
// LUNORA_SERVER_PORT and so on.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("LUNORA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.cookie_secure", false)

	v.SetDefault("database.path", "data/lunora.db")

	v.SetDefault("auth.secret_key", "")
	v.SetDefault("auth.token_ttl", "168h")

	v.SetDefault("cycle.timezone", "UTC")
}

// Validate rejects configurations that would run but misbehave: a missing or
// placeholder secret, an unparseable timezone, a non-positive TTL.
func (c *Config) Validate() error {
	if c.Auth.SecretKey == insecureSecretPlaceholder {
		return errors.New("auth.secret_key still uses the insecure placeholder")
	}
	if len(c.Auth.SecretKey) < 32 {
		return errors.New("auth.secret_key must be at least 32 characters")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if _, err := time.LoadLocation(c.Cycle.Timezone); err != nil {
		return fmt.Errorf("cycle.timezone: %w", err)
	}
	return nil
}

// Location resolves the configured timezone, falling back to UTC for values
// that stopped resolving after validation (renamed zoneinfo entries).
func (c *Config) Location() *time.Location {
	location, err := time.LoadLocation(c.Cycle.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}
