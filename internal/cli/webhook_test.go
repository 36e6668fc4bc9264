package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"agenteval/pkg/agenteval"
)

func TestWebhookCommandRegistersHook(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/webhooks" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		writeTestJSON(t, w, http.StatusCreated, agenteval.Webhook{
			ID:        "wh_1",
			URL:       "https://hooks.example.com/eval",
			Events:    []string{agenteval.EventEvaluationCompleted, agenteval.EventEvaluationFailed},
			CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		})
	}))
	t.Cleanup(server.Close)
	configPath := writeProjectConfig(t, server.URL+"/v1")

	var out, err bytes.Buffer
	code := Run([]string{
		"webhook", "--config", configPath,
		"--url", "https://hooks.example.com/eval",
		"--events", "evaluation.completed, evaluation.failed",
	}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if gotBody["url"] != "https://hooks.example.com/eval" {
		t.Fatalf("unexpected url in request: %v", gotBody["url"])
	}
	if !strings.Contains(out.String(), "Registered webhook wh_1") {
		t.Fatalf("expected registration notice, got %q", out.String())
	}
	if !strings.Contains(out.String(), "evaluation.completed, evaluation.failed") {
		t.Fatalf("expected event list, got %q", out.String())
	}
}

func TestWebhookCommandRequiresURL(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"webhook"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "Missing --url") {
		t.Fatalf("expected missing url error, got %q", err.String())
	}
}

func TestWebhookCommandRejectsUnknownEvent(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"webhook", "--url", "https://hooks.example.com", "--events", "evaluation.paused"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), `unknown event "evaluation.paused"`) {
		t.Fatalf("expected unknown event error, got %q", err.String())
	}
}

func TestParseEventNames(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "empty means default", input: "", want: nil},
		{name: "single", input: "evaluation.started", want: []string{"evaluation.started"}},
		{name: "spaced list", input: " evaluation.completed , evaluation.failed ", want: []string{"evaluation.completed", "evaluation.failed"}},
		{name: "trailing comma", input: "evaluation.completed,", want: []string{"evaluation.completed"}},
		{name: "unknown", input: "evaluation.restarted", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEventNames(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseEventNames(%q): %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("parseEventNames(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
