package agenteval

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"
)

func TestEvaluationsCreateSendsPayload(t *testing.T) {
	var gotBody []byte
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/evaluations" {
			t.Errorf("expected POST /evaluations, got %s %s", r.Method, r.URL.Path)
		}
		gotBody, _ = io.ReadAll(r.Body)
		writeJSON(t, w, http.StatusCreated, snapshot(StatusPending, nil))
	})
	client := newTestClient(t, handler)

	eval, err := client.Evaluations.Create(context.Background(), "agent_1", "suite_001", map[string]any{"temperature": 0.2})
	if err != nil {
		t.Fatalf("create evaluation: %v", err)
	}
	if eval.client != client {
		t.Error("expected the evaluation to be attached to the client")
	}
	if eval.Status != StatusPending {
		t.Errorf("expected pending status, got %s", eval.Status)
	}
	var sent createEvaluationRequest
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	if sent.AgentID != "agent_1" || sent.TestSuiteID != "suite_001" {
		t.Errorf("unexpected request: %+v", sent)
	}
	if sent.Config["temperature"] != 0.2 {
		t.Errorf("expected config forwarded, got %+v", sent.Config)
	}
}

func TestEvaluationsCreateValidatesIDs(t *testing.T) {
	client, err := New("key")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Evaluations.Create(context.Background(), "", "suite_001", nil); err == nil {
		t.Fatal("expected an error for a missing agent id")
	}
	if _, err := client.Evaluations.Create(context.Background(), "agent_1", "", nil); err == nil {
		t.Fatal("expected an error for a missing suite id")
	}
}

func TestEvaluationsGetAttachesClient(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/evaluations/eval_1" {
			t.Errorf("expected path /evaluations/eval_1, got %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, snapshot(StatusRunning, nil))
	})
	client := newTestClient(t, handler)

	eval, err := client.Evaluations.Get(context.Background(), "eval_1")
	if err != nil {
		t.Fatalf("get evaluation: %v", err)
	}
	if eval.client != client {
		t.Error("expected the evaluation to be attached to the client")
	}
}

func TestEvaluationsListQueryParameters(t *testing.T) {
	var gotQuery url.Values
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeJSON(t, w, http.StatusOK, EvaluationList{
			Evaluations: []*Evaluation{{ID: "eval_1", Status: StatusCompleted}},
			Pagination:  Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
		})
	})
	client := newTestClient(t, handler)

	list, err := client.Evaluations.List(context.Background(), ListEvaluationsParams{})
	if err != nil {
		t.Fatalf("list evaluations: %v", err)
	}
	if gotQuery.Get("page") != "1" || gotQuery.Get("limit") != "10" {
		t.Errorf("expected default page=1 limit=10, got %v", gotQuery)
	}
	if gotQuery.Has("status") {
		t.Errorf("expected no status filter by default, got %v", gotQuery)
	}
	if len(list.Evaluations) != 1 || list.Evaluations[0].client == nil {
		t.Error("expected listed evaluations attached to the client")
	}

	_, err = client.Evaluations.List(context.Background(), ListEvaluationsParams{Page: 3, Limit: 500, Status: StatusFailed})
	if err != nil {
		t.Fatalf("list evaluations: %v", err)
	}
	if gotQuery.Get("page") != "3" {
		t.Errorf("expected page=3, got %q", gotQuery.Get("page"))
	}
	if gotQuery.Get("limit") != "100" {
		t.Errorf("expected limit capped at 100, got %q", gotQuery.Get("limit"))
	}
	if gotQuery.Get("status") != "failed" {
		t.Errorf("expected status=failed, got %q", gotQuery.Get("status"))
	}
}
