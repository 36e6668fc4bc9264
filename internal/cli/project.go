package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"agenteval/internal/config"
	"agenteval/internal/spec"
	"agenteval/pkg/agenteval"
)

// project bundles the loaded config with the paths derived from it.
type project struct {
	cfg        spec.Config
	configPath string
	root       string
}

// loadProject resolves and loads the project config for a command.
func loadProject(configFlag string) (*project, error) {
	path, err := resolveConfigPath(configFlag)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return &project{
		cfg:        cfg,
		configPath: path,
		root:       config.ProjectRootFromConfigPath(path),
	}, nil
}

// historyPath resolves the history database location against the project root.
func (p *project) historyPath() string {
	if filepath.IsAbs(p.cfg.History.Path) {
		return p.cfg.History.Path
	}
	return filepath.Join(p.root, p.cfg.History.Path)
}

// client builds an SDK client from the config. The API key is read from the
// environment variable the config names; it is never stored in the file.
// observer, when non-nil, receives every refreshed evaluation during waits.
func (p *project) client(observer func(*agenteval.Evaluation)) (*agenteval.Client, error) {
	key := os.Getenv(p.cfg.API.KeyEnv)
	if key == "" {
		return nil, fmt.Errorf("API key is not set: export %s", p.cfg.API.KeyEnv)
	}
	return agenteval.NewWithConfig(agenteval.Config{
		APIKey:       key,
		BaseURL:      p.cfg.API.BaseURL,
		Timeout:      time.Duration(p.cfg.API.TimeoutSeconds) * time.Second,
		PollObserver: observer,
	})
}

// waitTimeout returns the configured default wait window.
func (p *project) waitTimeout() time.Duration {
	return time.Duration(p.cfg.Defaults.WaitTimeoutSeconds) * time.Second
}

// watchInterval returns the configured poll interval for watch.
func (p *project) watchInterval() time.Duration {
	return time.Duration(p.cfg.Watch.IntervalSeconds) * time.Second
}
