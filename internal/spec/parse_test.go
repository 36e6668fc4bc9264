package spec

import "testing"

// TestParseConfigValid verifies valid config parsing succeeds.
func TestParseConfigValid(t *testing.T) {
	data := []byte(`version: 1
api:
  base_url: "http://localhost:5000/v1"
  key_env: "EVAL_API_KEY"
  timeout_seconds: 30
defaults:
  test_suite: suite_001
  wait_timeout_seconds: 300
history:
  path: ".agenteval/history.duckdb"
watch:
  interval_seconds: 2
  page_limit: 20
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.API.KeyEnv != "EVAL_API_KEY" {
		t.Fatalf("expected key_env to round-trip, got %q", cfg.API.KeyEnv)
	}
	if cfg.Defaults.TestSuite != "suite_001" {
		t.Fatalf("expected default suite to round-trip, got %q", cfg.Defaults.TestSuite)
	}
}

// TestParseConfigUnknownField verifies unknown fields are rejected.
func TestParseConfigUnknownField(t *testing.T) {
	data := []byte(`version: 1
api:
  base_url: "http://localhost:5000/v1"
unknown: true
`)
	if _, err := ParseConfig(data); err == nil {
		t.Fatalf("expected parse error for unknown field")
	}
}

// TestParseConfigRejectsMultipleDocs verifies multiple YAML docs are rejected.
func TestParseConfigRejectsMultipleDocs(t *testing.T) {
	data := []byte("version: 1\n---\nversion: 1\n")
	if _, err := ParseConfig(data); err == nil {
		t.Fatalf("expected parse error for multiple documents")
	}
}
