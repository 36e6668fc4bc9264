package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"agenteval/internal/testutil"
	"agenteval/pkg/agenteval"
)

type testSuitesResponse struct {
	TestSuites []*agenteval.TestSuite `json:"test_suites"`
}

// HTTPCreateAgent sends a POST /v1/agents request.
func HTTPCreateAgent(t testing.TB, baseURL, name, model string) agenteval.Agent {
	t.Helper()
	payload, err := json.Marshal(map[string]string{"name": name, "model": model})
	if err != nil {
		t.Fatalf("marshal agent payload: %v", err)
	}
	body := doRequest(t, http.MethodPost, baseURL+"/v1/agents", payload)
	var agent agenteval.Agent
	if err := json.Unmarshal(body, &agent); err != nil {
		t.Fatalf("decode agent response: %v", err)
	}
	return agent
}

// HTTPListSuites sends a GET /v1/test-suites request.
func HTTPListSuites(t testing.TB, baseURL string) []*agenteval.TestSuite {
	t.Helper()
	body := doRequest(t, http.MethodGet, baseURL+"/v1/test-suites", nil)
	var resp testSuitesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode suites response: %v", err)
	}
	return resp.TestSuites
}

// HTTPCreateEvaluation sends a POST /v1/evaluations request.
func HTTPCreateEvaluation(t testing.TB, baseURL, agentID, suiteID string) agenteval.Evaluation {
	t.Helper()
	payload, err := json.Marshal(map[string]string{"agent_id": agentID, "test_suite_id": suiteID})
	if err != nil {
		t.Fatalf("marshal evaluation payload: %v", err)
	}
	body := doRequest(t, http.MethodPost, baseURL+"/v1/evaluations", payload)
	var eval agenteval.Evaluation
	if err := json.Unmarshal(body, &eval); err != nil {
		t.Fatalf("decode evaluation response: %v", err)
	}
	return eval
}

// HTTPGetEvaluation sends a GET /v1/evaluations/{id} request.
func HTTPGetEvaluation(t testing.TB, baseURL, id string) agenteval.Evaluation {
	t.Helper()
	body := doRequest(t, http.MethodGet, baseURL+"/v1/evaluations/"+id, nil)
	var eval agenteval.Evaluation
	if err := json.Unmarshal(body, &eval); err != nil {
		t.Fatalf("decode evaluation response: %v", err)
	}
	return eval
}

// HTTPListEvaluations sends a GET /v1/evaluations request.
func HTTPListEvaluations(t testing.TB, baseURL, query string) agenteval.EvaluationList {
	t.Helper()
	url := baseURL + "/v1/evaluations"
	if query != "" {
		url += "?" + query
	}
	body := doRequest(t, http.MethodGet, url, nil)
	var list agenteval.EvaluationList
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("decode evaluation list: %v", err)
	}
	return list
}

// HTTPCreateWebhook sends a POST /v1/webhooks request.
func HTTPCreateWebhook(t testing.TB, baseURL, url string, events []string) agenteval.Webhook {
	t.Helper()
	payload, err := json.Marshal(map[string]any{"url": url, "events": events})
	if err != nil {
		t.Fatalf("marshal webhook payload: %v", err)
	}
	body := doRequest(t, http.MethodPost, baseURL+"/v1/webhooks", payload)
	var hook agenteval.Webhook
	if err := json.Unmarshal(body, &hook); err != nil {
		t.Fatalf("decode webhook response: %v", err)
	}
	return hook
}

// doRequest executes an authenticated JSON request and returns the body.
func doRequest(t testing.TB, method, url string, payload []byte) []byte {
	t.Helper()
	ctx := testutil.Context(t, 2*time.Second)
	reader := bytes.NewReader(payload)
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", DefaultAPIKey)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("http request: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.Fatalf("unexpected status %d for %s %s: %s", resp.StatusCode, method, url, string(body))
	}
	return body
}
