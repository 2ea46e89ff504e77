package config

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"strings"
)

// ErrMissingAPIKey is returned by Load when no LLM credential is configured.
// The agent cannot run without one, so this is fatal at startup rather than
// surfaced per request.
var ErrMissingAPIKey = errors.New("ANTHROPIC_API_KEY is not set")

type Config struct {
	// Server
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	APIPrefix   string `json:"api_prefix"`
	LogLevel    string `json:"log_level"`

	// CORS
	CORSOrigins []string `json:"cors_origins"`

	// Auth
	APIKeyHeader string   `json:"api_key_header"`
	APIKeys      []string `json:"api_keys"`
	EnableAuth   bool     `json:"enable_auth"`

	// Rate Limiting
	RateLimitPerMinute int `json:"rate_limit_per_minute"`

	// AI / LLM
	AnthropicAPIKey  string  `json:"anthropic_api_key"`
	AnthropicBaseURL string  `json:"anthropic_base_url"` // override for OpenRouter-style proxies
	Model            string  `json:"model"`
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"max_output_tokens"`

	// Agent loop
	MaxIterations int `json:"max_iterations"`
	AgentTimeout  int `json:"agent_timeout"` // seconds, per HTTP run
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:               DefaultHost,
		Port:               DefaultPort,
		Environment:        DefaultEnvironment,
		APIPrefix:          DefaultAPIPrefix,
		LogLevel:           DefaultLogLevel,
		CORSOrigins:        DefaultCORSOrigins,
		APIKeyHeader:       "X-API-Key",
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		Model:              DefaultModel,
		Temperature:        DefaultTemperature,
		MaxOutputTokens:    DefaultMaxOutputTokens,
		MaxIterations:      DefaultMaxIterations,
		AgentTimeout:       DefaultAgentTimeout,
	}

	// Load from JSON config file if specified
	if path := getEnv("REAGENT_CONFIG", ""); path != "" {
		if err := loadJSON(path, cfg); err != nil {
			return nil, err
		}
	}

	// Environment overrides
	applyEnvOverrides(cfg)

	if cfg.AnthropicAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.MaxIterations < 1 {
		cfg.MaxIterations = DefaultMaxIterations
	}

	return cfg, nil
}

func loadJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := getEnv("REAGENT_HOST", ""); v != "" {
		cfg.Host = v
	}
	if v := getEnv("REAGENT_PORT", ""); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := getEnv("REAGENT_ENV", ""); v != "" {
		cfg.Environment = v
	}
	if v := getEnv("REAGENT_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getEnv("REAGENT_API_KEYS", ""); v != "" {
		cfg.APIKeys = strings.Split(v, ",")
	}
	if v := getEnv("ANTHROPIC_API_KEY", ""); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := getEnv("ANTHROPIC_BASE_URL", ""); v != "" {
		cfg.AnthropicBaseURL = v
	}
	if v := getEnv("REAGENT_MODEL", ""); v != "" {
		cfg.Model = v
	}
	if v := getEnv("REAGENT_MAX_ITERATIONS", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxIterations = n
		}
	}
	if v := getEnv("RATE_LIMIT_PER_MINUTE", ""); v != "" {
		if r, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitPerMinute = r
		}
	}
	if v := getEnv("ENABLE_AUTH", ""); v != "" {
		cfg.EnableAuth = v == "true" || v == "1"
	}
	if v := getEnv("REAGENT_AGENT_TIMEOUT", ""); v != "" {
		if t, err := strconv.Atoi(v); err == nil && t > 0 {
			cfg.AgentTimeout = t
		}
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
