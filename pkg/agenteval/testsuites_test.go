package agenteval

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
)

func suiteCatalogHandler(t *testing.T, calls *int32) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if r.URL.Path != "/test-suites" {
			t.Errorf("expected path /test-suites, got %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, map[string][]*TestSuite{
			"test_suites": {
				{ID: "suite_001", Name: "Basic Reasoning", TestCount: 25, Categories: []string{"logic", "math"}},
				{ID: "suite_002", Name: "Code Generation", TestCount: 50, Categories: []string{"python", "go"}},
			},
		})
	})
}

func TestTestSuitesList(t *testing.T) {
	var calls int32
	client := newTestClient(t, suiteCatalogHandler(t, &calls))

	suites, err := client.TestSuites.List(context.Background())
	if err != nil {
		t.Fatalf("list suites: %v", err)
	}
	if len(suites) != 2 {
		t.Fatalf("expected 2 suites, got %d", len(suites))
	}
	if suites[0].ID != "suite_001" || suites[0].TestCount != 25 {
		t.Errorf("unexpected first suite: %+v", suites[0])
	}
}

func TestTestSuitesGetFiltersClientSide(t *testing.T) {
	var calls int32
	client := newTestClient(t, suiteCatalogHandler(t, &calls))

	suite, err := client.TestSuites.Get(context.Background(), "suite_002")
	if err != nil {
		t.Fatalf("get suite: %v", err)
	}
	if suite == nil || suite.Name != "Code Generation" {
		t.Fatalf("expected suite_002, got %+v", suite)
	}
	if calls != 1 {
		t.Errorf("expected a single catalog fetch, got %d", calls)
	}
}

func TestTestSuitesGetMissingReturnsNil(t *testing.T) {
	var calls int32
	client := newTestClient(t, suiteCatalogHandler(t, &calls))

	suite, err := client.TestSuites.Get(context.Background(), "suite_999")
	if err != nil {
		t.Fatalf("get suite: %v", err)
	}
	if suite != nil {
		t.Errorf("expected nil for an unknown suite, got %+v", suite)
	}
}
