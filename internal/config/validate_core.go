package config

import (
	"fmt"
	"net/url"
	"strings"

	"agenteval/internal/spec"
)

// Validate checks a normalized config for correctness.
func Validate(cfg *spec.Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	validateAPI(cfg, collector.add)
	validateDefaults(cfg, collector.add)
	validateHistory(cfg, collector.add)
	validateWatch(cfg, collector.add)

	return collector.result()
}

// validateAPI checks the service endpoint settings.
func validateAPI(cfg *spec.Config, add issueAdder) {
	baseURL := strings.TrimSpace(cfg.API.BaseURL)
	if baseURL == "" {
		add("api.base_url", "is required")
	} else {
		parsed, err := url.Parse(baseURL)
		if err != nil || parsed.Host == "" {
			add("api.base_url", fmt.Sprintf("invalid URL %q", cfg.API.BaseURL))
		} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
			add("api.base_url", fmt.Sprintf("unsupported scheme %q", parsed.Scheme))
		}
	}

	keyEnv := strings.TrimSpace(cfg.API.KeyEnv)
	if keyEnv == "" {
		add("api.key_env", "is required")
	} else if !validEnvName(keyEnv) {
		add("api.key_env", fmt.Sprintf("invalid environment variable name %q", cfg.API.KeyEnv))
	}

	if cfg.API.TimeoutSeconds <= 0 {
		add("api.timeout_seconds", "must be > 0")
	}
}

// validateDefaults checks the run and wait fallbacks.
func validateDefaults(cfg *spec.Config, add issueAdder) {
	if strings.TrimSpace(cfg.Defaults.TestSuite) == "" {
		add("defaults.test_suite", "is required")
	}
	if cfg.Defaults.WaitTimeoutSeconds <= 0 {
		add("defaults.wait_timeout_seconds", "must be > 0")
	}
}

// validateHistory checks the local database location.
func validateHistory(cfg *spec.Config, add issueAdder) {
	if strings.TrimSpace(cfg.History.Path) == "" {
		add("history.path", "is required")
	}
}

// validateWatch checks the live table settings.
func validateWatch(cfg *spec.Config, add issueAdder) {
	if cfg.Watch.IntervalSeconds <= 0 {
		add("watch.interval_seconds", "must be > 0")
	}
	if cfg.Watch.PageLimit <= 0 || cfg.Watch.PageLimit > 100 {
		add("watch.page_limit", "must be between 1 and 100")
	}
}

// validEnvName reports whether a string is usable as an environment
// variable name.
func validEnvName(name string) bool {
	for i, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
