package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// PlaceholderAPIKey is used when no key is configured. The provider rejects
// it at call time, so startup never fails on a missing key.
const PlaceholderAPIKey = "default_key"

// Query log backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	OpenAI   OpenAIConfig
	Search   SearchConfig
	QueryLog QueryLogConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string   `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port           int      `env:"SERVER_PORT" envDefault:"5000"`
	GinMode        string   `env:"GIN_MODE" envDefault:"release"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// OpenAIConfig holds language-model provider configuration
type OpenAIConfig struct {
	APIKey          string  `env:"OPENAI_API_KEY"`
	APIKeyFallback  string  `env:"OPENAI_API_KEY_ENV_VAR"`
	APIBase         string  `env:"OPENAI_API_BASE" envDefault:"https://api.openai.com/v1"`
	ChatModel       string  `env:"OPENAI_CHAT_MODEL" envDefault:"gpt-4o"`
	ChatTemperature float32 `env:"OPENAI_CHAT_TEMPERATURE" envDefault:"0.2"`
	ChatMaxTokens   int     `env:"OPENAI_CHAT_MAX_TOKENS" envDefault:"2048"`
	Timeout         int     `env:"OPENAI_TIMEOUT" envDefault:"60"` // seconds
}

// SearchConfig holds AI search and history configuration
type SearchConfig struct {
	NearbyRadiusM       float64 `env:"SEARCH_NEARBY_RADIUS_M" envDefault:"1000"`
	NearbyLimit         int     `env:"SEARCH_NEARBY_LIMIT" envDefault:"5"`
	HistoryDefaultLimit int     `env:"SEARCH_HISTORY_DEFAULT_LIMIT" envDefault:"10"`
	HistoryMaxLimit     int     `env:"SEARCH_HISTORY_MAX_LIMIT" envDefault:"100"`
}

// QueryLogConfig selects where AI query records are kept
type QueryLogConfig struct {
	Backend            string `env:"QUERY_LOG_BACKEND" envDefault:"memory"`
	DSN                string `env:"DATABASE_URL"`
	MaxConnections     int    `env:"PG_MAX_CONNECTIONS" envDefault:"10"`
	MaxIdleConnections int    `env:"PG_MAX_IDLE_CONNECTIONS" envDefault:"2"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads configuration from the environment, after an optional .env file
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.OpenAI.APIKey = cfg.OpenAI.ResolvedAPIKey()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ResolvedAPIKey returns the primary key, then the fallback, then the placeholder
func (c OpenAIConfig) ResolvedAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	if c.APIKeyFallback != "" {
		return c.APIKeyFallback
	}
	return PlaceholderAPIKey
}

// HasAPIKey reports whether a real key was configured
func (c OpenAIConfig) HasAPIKey() bool {
	return c.ResolvedAPIKey() != PlaceholderAPIKey
}

// RequestTimeout returns the upstream HTTP timeout
func (c OpenAIConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Validate checks cross-field constraints that tags cannot express
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.QueryLog.Backend) {
	case BackendMemory:
	case BackendPostgres:
		if c.QueryLog.DSN == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when QUERY_LOG_BACKEND=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported QUERY_LOG_BACKEND %q", c.QueryLog.Backend))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT out of range: %d", c.Server.Port))
	}
	if c.OpenAI.Timeout <= 0 {
		errs = append(errs, errors.New("OPENAI_TIMEOUT must be positive"))
	}
	if c.Search.NearbyRadiusM <= 0 {
		errs = append(errs, errors.New("SEARCH_NEARBY_RADIUS_M must be positive"))
	}
	if c.Search.NearbyLimit <= 0 {
		errs = append(errs, errors.New("SEARCH_NEARBY_LIMIT must be positive"))
	}
	if c.Search.HistoryDefaultLimit <= 0 || c.Search.HistoryMaxLimit < c.Search.HistoryDefaultLimit {
		errs = append(errs, errors.New("search history limits must satisfy 0 < default <= max"))
	}

	return errors.Join(errs...)
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
