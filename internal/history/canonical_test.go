package history_test

import (
	"testing"

	"agenteval/internal/history"
)

// TestCanonicalJSONStable verifies canonical JSON output ignores map key order.
func TestCanonicalJSONStable(t *testing.T) {
	configA := map[string]interface{}{
		"temperature": 0.2,
		"runtime": map[string]interface{}{
			"sandbox": true,
			"tools":   []interface{}{"search", "calculator"},
		},
	}
	configB := map[string]interface{}{
		"runtime": map[string]interface{}{
			"tools":   []interface{}{"search", "calculator"},
			"sandbox": true,
		},
		"temperature": 0.2,
	}

	left, err := history.CanonicalJSON(configA)
	if err != nil {
		t.Fatalf("canonical json a: %v", err)
	}
	right, err := history.CanonicalJSON(configB)
	if err != nil {
		t.Fatalf("canonical json b: %v", err)
	}
	if string(left) != string(right) {
		t.Fatalf("canonical json mismatch: %s vs %s", left, right)
	}
}

// TestFingerprintJSONDistinguishesValues verifies different payloads differ.
func TestFingerprintJSONDistinguishesValues(t *testing.T) {
	left, err := history.FingerprintJSON(map[string]interface{}{"temperature": 0.2})
	if err != nil {
		t.Fatalf("fingerprint left: %v", err)
	}
	right, err := history.FingerprintJSON(map[string]interface{}{"temperature": 0.3})
	if err != nil {
		t.Fatalf("fingerprint right: %v", err)
	}
	if left == right {
		t.Fatalf("expected distinct fingerprints, both %s", left)
	}
	if len(left) != 64 {
		t.Fatalf("expected sha256 hex digest, got %q", left)
	}
}

// TestCanonicalJSONHandlesRawBytes verifies byte payloads are normalized.
func TestCanonicalJSONHandlesRawBytes(t *testing.T) {
	fromBytes, err := history.CanonicalJSON([]byte(`{"b":2,"a":1}`))
	if err != nil {
		t.Fatalf("canonical json bytes: %v", err)
	}
	fromMap, err := history.CanonicalJSON(map[string]interface{}{"a": 1.0, "b": 2.0})
	if err != nil {
		t.Fatalf("canonical json map: %v", err)
	}
	if string(fromBytes) != string(fromMap) {
		t.Fatalf("expected equal canonical forms, got %s vs %s", fromBytes, fromMap)
	}
}
