package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"agenteval/internal/platform"
	"agenteval/pkg/agenteval"
)

type createEvaluationRequest struct {
	AgentID     string         `json:"agent_id"`
	TestSuiteID string         `json:"test_suite_id"`
	Config      map[string]any `json:"config"`
}

func (h *handler) handleEvaluations(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	switch r.Method {
	case http.MethodPost:
		h.handleCreateEvaluation(w, r)
	case http.MethodGet:
		h.handleListEvaluations(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleCreateEvaluation(w http.ResponseWriter, r *http.Request) {
	var req createEvaluationRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.AgentID == "" || req.TestSuiteID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	eval, err := h.store.CreateEvaluation(req.AgentID, req.TestSuiteID, req.Config)
	if err != nil {
		if errors.Is(err, platform.ErrAgentNotFound) || errors.Is(err, platform.ErrTestSuiteNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "backend_error")
		return
	}
	writeJSON(w, http.StatusCreated, eval)
}

func (h *handler) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, ok := queryInt(query.Get("page"), 1)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	limit, ok := queryInt(query.Get("limit"), 10)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	status := agenteval.Status(query.Get("status"))
	switch status {
	case "", agenteval.StatusPending, agenteval.StatusRunning, agenteval.StatusCompleted, agenteval.StatusFailed:
	default:
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	evals, pagination := h.store.ListEvaluations(page, limit, status)
	writeJSON(w, http.StatusOK, agenteval.EvaluationList{Evaluations: evals, Pagination: pagination})
}

func (h *handler) handleEvaluationByID(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/v1/evaluations/"))
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	eval, ok := h.store.GetEvaluation(id)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, eval)
}

// queryInt parses a positive integer query value, falling back to def when
// the value is absent.
func queryInt(value string, def int) (int, bool) {
	if value == "" {
		return def, true
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
