package api

import (
	"net/http"
	"time"

	"agenteval/internal/platform"
	"agenteval/pkg/agenteval"
)

// Config wires dependencies for the HTTP handler.
type Config struct {
	Store *platform.Store
	// APIKey, when non-empty, is the only key accepted. Otherwise any
	// non-empty X-API-Key header passes.
	APIKey  string
	Version string
	Now     func() time.Time
}

// NewHandler builds an HTTP handler for the evaluation service API.
func NewHandler(cfg Config) http.Handler {
	h := &handler{
		store:   cfg.Store,
		apiKey:  cfg.APIKey,
		version: cfg.Version,
		nowFn:   cfg.Now,
	}
	if h.version == "" {
		h.version = agenteval.Version
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/health", h.handleHealth)
	mux.HandleFunc("/v1/agents", h.handleAgents)
	mux.HandleFunc("/v1/agents/", h.handleAgentByID)
	mux.HandleFunc("/v1/test-suites", h.handleTestSuites)
	mux.HandleFunc("/v1/evaluations", h.handleEvaluations)
	mux.HandleFunc("/v1/evaluations/", h.handleEvaluationByID)
	mux.HandleFunc("/v1/webhooks", h.handleWebhooks)
	return mux
}

type handler struct {
	store   *platform.Store
	apiKey  string
	version string
	nowFn   func() time.Time
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, agenteval.Health{
		Status:    "healthy",
		Version:   h.version,
		Timestamp: h.now(),
	})
}

// authorize rejects requests without an acceptable X-API-Key header.
// It reports whether the request may proceed.
func (h *handler) authorize(w http.ResponseWriter, r *http.Request) bool {
	key := r.Header.Get("X-API-Key")
	if key == "" || (h.apiKey != "" && key != h.apiKey) {
		writeError(w, http.StatusUnauthorized, "invalid_api_key")
		return false
	}
	return true
}

func (h *handler) now() time.Time {
	if h.nowFn != nil {
		return h.nowFn()
	}
	return time.Now()
}
