package config

import (
	"fmt"
	"os"
	"path/filepath"

	"agenteval/pkg/agenteval"
)

// Scaffold writes a starter config file plus a .gitignore entry for the
// history database. It refuses to overwrite an existing config.
func Scaffold(configPath string, params ScaffoldParams) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if params.BaseURL == "" {
		params.BaseURL = agenteval.DefaultBaseURL
	}
	if params.KeyEnv == "" {
		params.KeyEnv = agenteval.EnvAPIKey
	}

	baseDir := filepath.Dir(configPath)
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	content, err := renderScaffoldConfig(params)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	ignorePath := filepath.Join(baseDir, ".gitignore")
	if _, err := os.Stat(ignorePath); os.IsNotExist(err) {
		if err := os.WriteFile(ignorePath, []byte("history.duckdb\n"), 0o644); err != nil {
			return fmt.Errorf("write gitignore: %w", err)
		}
	}
	return nil
}
