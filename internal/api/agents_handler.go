package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"agenteval/pkg/agenteval"
)

type createAgentRequest struct {
	Name        string         `json:"name"`
	Model       string         `json:"model"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}

func (h *handler) handleAgents(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	switch r.Method {
	case http.MethodPost:
		h.handleCreateAgent(w, r)
	case http.MethodGet:
		// Listing agents is not part of the service surface.
		writeError(w, http.StatusNotImplemented, "not_implemented")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleCreateAgent(w http.ResponseWriter, r *http.Request) {
	var req createAgentRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	agent, err := h.store.CreateAgent(agenteval.CreateAgentParams{
		Name:        req.Name,
		Model:       req.Model,
		Version:     req.Version,
		Description: req.Description,
		Metadata:    req.Metadata,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	writeJSON(w, http.StatusCreated, agent)
}

func (h *handler) handleAgentByID(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/v1/agents/"))
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	agent, ok := h.store.GetAgent(id)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, agent)
}
