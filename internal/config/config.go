// Package config loads runtime settings from environment variables with
// sensible local-development defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates the application settings.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	AI       AIConfig       `mapstructure:"ai"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr     string `mapstructure:"addr"`
	LogLevel string `mapstructure:"log_level"`
}

// DatabaseConfig selects the storage backend. An empty URL runs on an
// embedded sqlite file; a postgres URL selects postgres.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// SessionConfig controls the session cookie.
type SessionConfig struct {
	Lifetime     time.Duration `mapstructure:"lifetime"`
	CookieName   string        `mapstructure:"cookie_name"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
}

// AIConfig configures the generative boundary. An empty APIKey disables
// the AI tab.
type AIConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	BaseURL     string        `mapstructure:"base_url"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.url", "")
	v.SetDefault("session.lifetime", "12h")
	v.SetDefault("session.cookie_name", "pagehelm_session")
	v.SetDefault("session.cookie_secure", false)
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "gpt-4.1-mini")
	v.SetDefault("ai.base_url", "https://api.openai.com/v1")
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.timeout", "90s")
}

func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"server.addr":           {"PAGEHELM_ADDR", "ADDR"},
		"server.log_level":      {"PAGEHELM_LOG_LEVEL"},
		"database.url":          {"PAGEHELM_DATABASE_URL", "DATABASE_URL"},
		"session.lifetime":      {"PAGEHELM_SESSION_LIFETIME"},
		"session.cookie_name":   {"PAGEHELM_SESSION_COOKIE"},
		"session.cookie_secure": {"PAGEHELM_SESSION_SECURE"},
		"ai.api_key":            {"PAGEHELM_OPENAI_API_KEY", "OPENAI_API_KEY"},
		"ai.model":              {"PAGEHELM_OPENAI_MODEL"},
		"ai.base_url":           {"PAGEHELM_OPENAI_BASE_URL"},
		"ai.temperature":        {"PAGEHELM_OPENAI_TEMPERATURE"},
		"ai.timeout":            {"PAGEHELM_OPENAI_TIMEOUT"},
	}
	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return err
		}
	}
	return nil
}

func validate(cfg Config) error {
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return fmt.Errorf("server address must not be empty")
	}
	if cfg.Session.Lifetime <= 0 {
		return fmt.Errorf("session lifetime must be positive")
	}
	if strings.TrimSpace(cfg.Session.CookieName) == "" {
		return fmt.Errorf("session cookie name must not be empty")
	}
	if cfg.AI.Timeout <= 0 {
		return fmt.Errorf("ai timeout must be positive")
	}
	return nil
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
