package api

import (
	"encoding/json"
	"net/http"

	"agenteval/pkg/agenteval"
)

type createWebhookRequest struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
}

func (h *handler) handleWebhooks(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req createWebhookRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	hook, err := h.store.CreateWebhook(agenteval.CreateWebhookParams{URL: req.URL, Events: req.Events})
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	writeJSON(w, http.StatusCreated, hook)
}
