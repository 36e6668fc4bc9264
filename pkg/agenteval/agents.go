package agenteval

import (
	"context"
	"encoding/json"
	"fmt"
)

// AgentsService manages agent registrations.
type AgentsService struct {
	client *Client
}

// CreateAgentParams are the inputs for AgentsService.Create.
// Name is required; Model defaults to "unknown" and Version to "1.0.0".
type CreateAgentParams struct {
	Name        string         `json:"name"`
	Model       string         `json:"model"`
	Version     string         `json:"version"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Create registers a new agent.
func (s *AgentsService) Create(ctx context.Context, params CreateAgentParams) (*Agent, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("agent name is required")
	}
	if params.Model == "" {
		params.Model = "unknown"
	}
	if params.Version == "" {
		params.Version = "1.0.0"
	}
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	body, status, err := s.client.post(ctx, "/agents", payload)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, decodeServiceError(status, body)
	}
	var agent Agent
	if err := unmarshalBody(body, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// Get fetches a single agent by id.
func (s *AgentsService) Get(ctx context.Context, id string) (*Agent, error) {
	var agent Agent
	if err := s.client.getJSON(ctx, "/agents/"+id, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// List is not supported by the evaluation service and always returns
// ErrNotSupported without issuing a request.
func (s *AgentsService) List(ctx context.Context) ([]*Agent, error) {
	return nil, fmt.Errorf("list agents: %w", ErrNotSupported)
}
