package spec

type Config struct {
	Version  int            `yaml:"version"`
	API      APIConfig      `yaml:"api"`
	Defaults DefaultsConfig `yaml:"defaults"`
	History  HistoryConfig  `yaml:"history"`
	Watch    WatchConfig    `yaml:"watch"`
}

type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	KeyEnv         string `yaml:"key_env"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type DefaultsConfig struct {
	TestSuite          string `yaml:"test_suite"`
	Agent              string `yaml:"agent"`
	WaitTimeoutSeconds int    `yaml:"wait_timeout_seconds"`
}

type HistoryConfig struct {
	Path string `yaml:"path"`
}

type WatchConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
	PageLimit       int `yaml:"page_limit"`
}
