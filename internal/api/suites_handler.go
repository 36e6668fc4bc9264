package api

import (
	"net/http"

	"agenteval/pkg/agenteval"
)

type testSuitesResponse struct {
	TestSuites []*agenteval.TestSuite `json:"test_suites"`
}

func (h *handler) handleTestSuites(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, testSuitesResponse{TestSuites: h.store.ListSuites()})
}
