package agenteval

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func httptestServer(t *testing.T, handler http.Handler) string {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv.URL
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	client, err := NewWithConfig(Config{APIKey: "test-key", BaseURL: httptestServer(t, handler)})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected an error for empty api key")
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	client, err := New("key")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected base url %q, got %q", DefaultBaseURL, client.baseURL)
	}
	if client.pollInterval != DefaultPollInterval {
		t.Errorf("expected poll interval %s, got %s", DefaultPollInterval, client.pollInterval)
	}
	if client.userAgent != defaultUserAgent {
		t.Errorf("expected user agent %q, got %q", defaultUserAgent, client.userAgent)
	}
	if client.Agents == nil || client.TestSuites == nil || client.Evaluations == nil || client.Webhooks == nil {
		t.Error("expected all resource services to be initialized")
	}
}

func TestNewWithConfigTrimsBaseURL(t *testing.T) {
	client, err := NewWithConfig(Config{APIKey: "key", BaseURL: "http://example.com/v1///"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.BaseURL() != "http://example.com/v1" {
		t.Errorf("expected trailing slashes trimmed, got %q", client.BaseURL())
	}
}

func TestClientSendsAuthHeaders(t *testing.T) {
	var gotKey, gotContentType, gotUserAgent string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		writeJSON(t, w, http.StatusOK, Health{Status: "healthy"})
	})
	client := newTestClient(t, handler)
	if _, err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("health check: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("expected X-API-Key %q, got %q", "test-key", gotKey)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", gotContentType)
	}
	if gotUserAgent != defaultUserAgent {
		t.Errorf("expected User-Agent %q, got %q", defaultUserAgent, gotUserAgent)
	}
}

func TestHealthCheckDecodesReport(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("expected path /health, got %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, Health{Status: "healthy", Version: "2.0.0", Timestamp: now})
	})
	client := newTestClient(t, handler)
	health, err := client.HealthCheck(context.Background())
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if health.Status != "healthy" || health.Version != "2.0.0" || !health.Timestamp.Equal(now) {
		t.Errorf("unexpected health report: %+v", health)
	}
}

func TestStatusErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		code   ErrorCode
	}{
		{"unauthorized", http.StatusUnauthorized, CodeAuth},
		{"not found", http.StatusNotFound, CodeNotFound},
		{"server error", http.StatusInternalServerError, CodeServer},
		{"bad gateway", http.StatusBadGateway, CodeServer},
		{"bad request", http.StatusBadRequest, CodeRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tc.status, map[string]string{"error": "boom"})
			})
			client := newTestClient(t, handler)
			_, err := client.HealthCheck(context.Background())
			var svcErr *ServiceError
			if !errors.As(err, &svcErr) {
				t.Fatalf("expected ServiceError, got %v", err)
			}
			if svcErr.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, svcErr.Code)
			}
			if svcErr.HTTPStatus != tc.status {
				t.Errorf("expected http status %d, got %d", tc.status, svcErr.HTTPStatus)
			}
			if svcErr.Message != "boom" {
				t.Errorf("expected service message carried over, got %q", svcErr.Message)
			}
		})
	}
}

func TestStatusErrorWithoutBodyKeepsStatusMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client := newTestClient(t, handler)
	_, err := client.HealthCheck(context.Background())
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if svcErr.Message != "http 500" {
		t.Errorf("expected fallback message, got %q", svcErr.Message)
	}
}

func TestConnectionErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	client, err := NewWithConfig(Config{APIKey: "key", BaseURL: url})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.HealthCheck(context.Background())
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if svcErr.Code != CodeConnection {
		t.Errorf("expected code %s, got %s", CodeConnection, svcErr.Code)
	}
	if svcErr.HTTPStatus != 0 {
		t.Errorf("expected no http status, got %d", svcErr.HTTPStatus)
	}
}

func TestTimeoutErrorCode(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewWithConfig(Config{
		APIKey:     "key",
		BaseURL:    srv.URL,
		HTTPClient: &http.Client{Timeout: 20 * time.Millisecond},
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.HealthCheck(context.Background())
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if svcErr.Code != CodeTimeout {
		t.Errorf("expected code %s, got %s", CodeTimeout, svcErr.Code)
	}
}

func TestContextCancellationPropagates(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	client := newTestClient(t, handler)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := client.HealthCheck(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline error, got %v", err)
	}
}

func TestFromEnvRequiresAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected an error when EVAL_API_KEY is unset")
	}
}

func TestFromEnvReadsConfiguration(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvBaseURL, "http://eval.internal/v1/")
	t.Setenv(EnvTimeout, "7")
	client, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if client.apiKey != "env-key" {
		t.Errorf("expected api key from env, got %q", client.apiKey)
	}
	if client.BaseURL() != "http://eval.internal/v1" {
		t.Errorf("expected base url from env, got %q", client.BaseURL())
	}
	httpClient, ok := client.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client, got %T", client.httpClient)
	}
	if httpClient.Timeout != 7*time.Second {
		t.Errorf("expected 7s timeout, got %s", httpClient.Timeout)
	}
}

func TestFromEnvRejectsBadTimeout(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvTimeout, "soon")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected an error for a non-numeric timeout")
	}
}
