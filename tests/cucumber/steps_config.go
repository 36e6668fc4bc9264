//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"agenteval/internal/api"
	"agenteval/internal/platform"
)

const smokeKeyEnv = "AGENTEVAL_SMOKE_KEY"

// aConfiguredProject boots an in-memory evaluation service, writes a
// project config pointing at it and moves the scenario into the project.
func (s *featureState) aConfiguredProject() error {
	if s.initialized {
		return nil
	}
	dir, err := os.MkdirTemp("", "agenteval-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.projectDir = dir
	s.configPath = filepath.Join(dir, ".agenteval", "config.yml")
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	s.startService()
	if err := s.writeConfig(validConfigYAML(s.service.URL + "/v1")); err != nil {
		return err
	}
	if err := s.setEnv(smokeKeyEnv, "test-key"); err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.initialized = true
	return nil
}

// startService hosts the evaluation API over an in-memory store with fast
// lifecycle timings so waits finish within a poll or two.
func (s *featureState) startService() {
	store := platform.New(platform.Config{
		Timings: platform.Timings{
			PendingFor: 50 * time.Millisecond,
			RunningFor: 100 * time.Millisecond,
		},
	})
	handler := api.NewHandler(api.Config{
		Store:  store,
		APIKey: "test-key",
		Now:    time.Now,
	})
	s.service = httptest.NewServer(handler)
}

// theConfigIsInvalid replaces the config with an invalid configuration.
func (s *featureState) theConfigIsInvalid() error {
	if err := s.aConfiguredProject(); err != nil {
		return err
	}
	return s.writeConfig(invalidConfigYAML())
}

// writeConfig persists configuration content to the project config path.
func (s *featureState) writeConfig(contents string) error {
	if s.configPath == "" {
		return fmt.Errorf("config path is not set")
	}
	if err := os.WriteFile(s.configPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// validConfigYAML returns a minimal valid config for cucumber tests.
func validConfigYAML(baseURL string) string {
	return fmt.Sprintf(`version: 1

api:
  base_url: %q
  key_env: %q
  timeout_seconds: 10

defaults:
  test_suite: "suite_001"
  wait_timeout_seconds: 60

history:
  path: ".agenteval/history.duckdb"
`, baseURL, smokeKeyEnv)
}

// invalidConfigYAML returns a config with an unsupported version.
func invalidConfigYAML() string {
	return `version: 2

api:
  base_url: "http://localhost:5000/v1"
  key_env: "EVAL_API_KEY"
`
}
