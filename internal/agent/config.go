package agent

import (
	"os"
	"strconv"
)

// Config bounds one assessment run.
type Config struct {
	// MaxTurns is the number of learner responses after which the
	// agent is forced to conclude.
	MaxTurns int

	// MaxIterations caps the inner agent loop per external turn. It
	// guarantees termination even when the model only ever calls
	// advisory tools without asking a question or concluding.
	MaxIterations int

	// MaxTokens is the per-request output token budget.
	MaxTokens int
}

// DefaultConfig returns the standard assessment bounds.
func DefaultConfig() Config {
	return Config{
		MaxTurns:      20,
		MaxIterations: 10,
		MaxTokens:     4096,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset or malformed values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("FRACMAP_MAX_TURNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTurns = n
		}
	}
	if v := os.Getenv("FRACMAP_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	return cfg
}
