package agenteval

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by FromEnv.
const (
	EnvAPIKey  = "EVAL_API_KEY"
	EnvBaseURL = "EVAL_API_URL"
	EnvTimeout = "EVAL_TIMEOUT"
)

// FromEnv builds a client from the environment. EVAL_API_KEY is required;
// EVAL_API_URL and EVAL_TIMEOUT (whole seconds) override the defaults.
func FromEnv() (*Client, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable not set", EnvAPIKey)
	}
	cfg := Config{
		APIKey:  apiKey,
		BaseURL: os.Getenv(EnvBaseURL),
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}
	return NewWithConfig(cfg)
}
