package config

import (
	"agenteval/internal/spec"
	"agenteval/pkg/agenteval"
)

// Normalization defaults. Seconds-valued fields mirror the SDK defaults.
const (
	DefaultTestSuite          = "suite_001"
	DefaultTimeoutSeconds     = 30
	DefaultWaitTimeoutSeconds = 300
	DefaultWatchInterval      = 2
	DefaultWatchPageLimit     = 20
)

// Normalize fills omitted fields with their defaults.
func Normalize(cfg *spec.Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = agenteval.DefaultBaseURL
	}
	if cfg.API.KeyEnv == "" {
		cfg.API.KeyEnv = agenteval.EnvAPIKey
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.Defaults.TestSuite == "" {
		cfg.Defaults.TestSuite = DefaultTestSuite
	}
	if cfg.Defaults.WaitTimeoutSeconds == 0 {
		cfg.Defaults.WaitTimeoutSeconds = DefaultWaitTimeoutSeconds
	}
	if cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryPath
	}
	if cfg.Watch.IntervalSeconds == 0 {
		cfg.Watch.IntervalSeconds = DefaultWatchInterval
	}
	if cfg.Watch.PageLimit == 0 {
		cfg.Watch.PageLimit = DefaultWatchPageLimit
	}
}
