package config

import "time"

const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8000
	DefaultEnvironment = "development"
	DefaultAPIPrefix   = "/api/v1"
	DefaultLogLevel    = "info"

	DefaultRateLimitPerMinute = 60

	DefaultModel = "claude-sonnet-4-6"

	// DefaultMaxIterations bounds the reasoning loop per run.
	DefaultMaxIterations = 10

	DefaultTemperature     = 0.7
	DefaultMaxOutputTokens = 2000

	// DefaultAgentTimeout caps a whole HTTP-driven run, in seconds.
	DefaultAgentTimeout = 300

	// DefaultToolTimeout is the per-call timeout for upstream tool APIs.
	DefaultToolTimeout = 10 * time.Second

	// DefaultLLMTimeout is the per-call timeout for the completion endpoint.
	DefaultLLMTimeout = 60 * time.Second

	DefaultMaxPromptLength = 4000

	DefaultCORSMaxAge = 300
)

var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8080",
}
