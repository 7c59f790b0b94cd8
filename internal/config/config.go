package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	OpenAI  OpenAIConfig
	Explain ExplainConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type OpenAIConfig struct {
	Provider    string
	APIKey      string
	APIEndpoint string
	Model       string
	APIVersion  string
	Timeout     time.Duration

	// DisableExternalCalls forces the placeholder path even when a key is set.
	DisableExternalCalls bool
}

type ExplainConfig struct {
	// Audience is the name the placeholder explanation is addressed to.
	Audience string
}

// ExternalCallsEnabled reports whether the service may reach the external
// text-generation provider: a key must be configured and the disable flag
// must be off.
func (c OpenAIConfig) ExternalCallsEnabled() bool {
	return c.APIKey != "" && !c.DisableExternalCalls
}

// Load builds the configuration from the process environment. Absent values
// fall back to defaults; Load never fails.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "3001")
	v.SetDefault("SERVER_READ_TIMEOUT", "30s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	v.SetDefault("OPENAI_PROVIDER", "openai")
	v.SetDefault("OPENAI_ENDPOINT", "https://api.openai.com/v1")
	v.SetDefault("OPENAI_MODEL", "gpt-5-nano")
	v.SetDefault("OPENAI_API_VERSION", "2023-05-15")
	v.SetDefault("OPENAI_TIMEOUT", "15s")
	v.SetDefault("EXPLAIN_AUDIENCE", "Al Ayman")

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("HOST"),
			Port:         v.GetString("PORT"),
			ReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
		},
		OpenAI: OpenAIConfig{
			Provider:             v.GetString("OPENAI_PROVIDER"),
			APIKey:               v.GetString("OPENAI_API_KEY"),
			APIEndpoint:          v.GetString("OPENAI_ENDPOINT"),
			Model:                v.GetString("OPENAI_MODEL"),
			APIVersion:           v.GetString("OPENAI_API_VERSION"),
			Timeout:              v.GetDuration("OPENAI_TIMEOUT"),
			DisableExternalCalls: isTruthy(v.GetString("DISABLE_EXTERNAL_CALLS")),
		},
		Explain: ExplainConfig{
			Audience: v.GetString("EXPLAIN_AUDIENCE"),
		},
	}

	slog.Info("configuration loaded",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"model", cfg.OpenAI.Model,
		"external_calls_enabled", cfg.OpenAI.ExternalCallsEnabled(),
	)
	return cfg
}

// isTruthy accepts the usual truthy spellings; anything else, including the
// empty string, is false.
func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "yes", "on":
		return true
	}
	return false
}
