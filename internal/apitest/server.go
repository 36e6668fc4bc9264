// Package apitest boots the in-memory evaluation service for integration
// tests. It is separate from testutil so the packages the service is built
// from can use testutil in their own tests without an import cycle.
package apitest

import (
	"net/http/httptest"
	"testing"
	"time"

	"agenteval/internal/api"
	"agenteval/internal/platform"
)

// DefaultAPIKey authenticates requests against test servers.
const DefaultAPIKey = "test-key"

// ServerConfig wires dependencies for StartServer.
type ServerConfig struct {
	Store  *platform.Store
	APIKey string
	Now    func() time.Time
}

// ServerInstance represents a running HTTP test server.
type ServerInstance struct {
	BaseURL string
	Store   *platform.Store
	Close   func()
}

// StartServer launches an in-memory HTTP server for the evaluation API.
func StartServer(t *testing.T, cfg ServerConfig) *ServerInstance {
	t.Helper()
	if cfg.Store == nil {
		cfg.Store = platform.New(platform.Config{})
	}
	if cfg.APIKey == "" {
		cfg.APIKey = DefaultAPIKey
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	handler := api.NewHandler(api.Config{
		Store:  cfg.Store,
		APIKey: cfg.APIKey,
		Now:    cfg.Now,
	})
	server := httptest.NewServer(handler)
	return &ServerInstance{
		BaseURL: server.URL,
		Store:   cfg.Store,
		Close:   server.Close,
	}
}
