package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"agenteval/pkg/agenteval"
)

// testKeyEnv names the API key variable used by test configs.
const testKeyEnv = "AGENTEVAL_TEST_KEY"

// writeProjectConfig writes a minimal project config pointing at baseURL
// and returns its path. The API key env var is set for the test.
func writeProjectConfig(t *testing.T, baseURL string) string {
	t.Helper()
	dir := t.TempDir()
	configDir := filepath.Join(dir, ".agenteval")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	configPath := filepath.Join(configDir, "config.yml")
	content := fmt.Sprintf(`version: 1

api:
  base_url: %q
  key_env: %q
  timeout_seconds: 5

defaults:
  test_suite: "suite_001"
  wait_timeout_seconds: 60

history:
  path: ".agenteval/history.duckdb"

watch:
  interval_seconds: 1
  page_limit: 20
`, baseURL, testKeyEnv)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(testKeyEnv, "test-key")
	return configPath
}

// writeTestJSON encodes v into an HTTP response.
func writeTestJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

// testEvaluation builds an evaluation snapshot for stub responses.
func testEvaluation(id string, status agenteval.Status, results *agenteval.EvaluationResults) agenteval.Evaluation {
	return agenteval.Evaluation{
		ID:          id,
		AgentID:     "agent_1",
		TestSuiteID: "suite_001",
		Status:      status,
		CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Results:     results,
	}
}
