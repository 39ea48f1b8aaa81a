package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr string

	// Anthropic credentials. An empty APIKey is a supported configuration:
	// the synthesis service then serves deterministic fallback definitions.
	AnthropicAPIKey  string
	AnthropicModel   string
	AnthropicTimeout time.Duration

	// Optional backing stores. Empty values select the in-memory stores.
	RedisURL    string
	PostgresDSN string

	// Rate limiting for the synthesis endpoint.
	RateLimit         int
	RateWindow        time.Duration
	RateLimitDisabled bool

	SessionTTL time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("VALUESPRISM_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}

	return Server{
		Addr:              addr,
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:    model,
		AnthropicTimeout:  envDuration("ANTHROPIC_TIMEOUT", 60*time.Second),
		RedisURL:          os.Getenv("REDIS_URL"),
		PostgresDSN:       os.Getenv("DATABASE_URL"),
		RateLimit:         envInt("RATE_LIMIT", 10),
		RateWindow:        envDuration("RATE_WINDOW", time.Minute),
		RateLimitDisabled: os.Getenv("RATE_LIMIT_DISABLED") == "true",
		SessionTTL:        envDuration("SESSION_TTL", 24*time.Hour),
	}
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
