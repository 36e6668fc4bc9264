package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// config describes the evalapid YAML configuration.
type config struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
		// APIKey pins the accepted key. When empty any non-empty
		// X-API-Key header passes, which suits local development.
		APIKey string `yaml:"api_key"`
		Org    string `yaml:"org"`
	} `yaml:"server"`
	Lifecycle struct {
		PendingSeconds  float64 `yaml:"pending_seconds"`
		RunningSeconds  float64 `yaml:"running_seconds"`
		SweepIntervalMs int     `yaml:"sweep_interval_ms"`
	} `yaml:"lifecycle"`
	Catalog struct {
		SeedPath string `yaml:"seed_path"`
	} `yaml:"catalog"`
	Webhooks struct {
		DeliveryTimeoutSeconds int `yaml:"delivery_timeout_seconds"`
	} `yaml:"webhooks"`
}

// loadConfig reads and validates the configuration file.
func loadConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":5000"
	}
	if cfg.Lifecycle.PendingSeconds < 0 || cfg.Lifecycle.RunningSeconds < 0 {
		return cfg, fmt.Errorf("lifecycle durations must not be negative")
	}
	if cfg.Lifecycle.SweepIntervalMs < 0 {
		return cfg, fmt.Errorf("lifecycle.sweep_interval_ms must not be negative")
	}
	return cfg, nil
}

func (c config) pendingFor() time.Duration {
	return time.Duration(c.Lifecycle.PendingSeconds * float64(time.Second))
}

func (c config) runningFor() time.Duration {
	return time.Duration(c.Lifecycle.RunningSeconds * float64(time.Second))
}

func (c config) sweepInterval() time.Duration {
	if c.Lifecycle.SweepIntervalMs <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.Lifecycle.SweepIntervalMs) * time.Millisecond
}

func (c config) deliveryTimeout() time.Duration {
	if c.Webhooks.DeliveryTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Webhooks.DeliveryTimeoutSeconds) * time.Second
}
