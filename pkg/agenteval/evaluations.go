package agenteval

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// EvaluationsService starts and inspects evaluations.
type EvaluationsService struct {
	client *Client
}

type createEvaluationRequest struct {
	AgentID     string         `json:"agent_id"`
	TestSuiteID string         `json:"test_suite_id"`
	Config      map[string]any `json:"config,omitempty"`
}

// Create starts an evaluation of one agent against one test suite.
// Config carries optional service-side run settings and may be nil.
// The returned evaluation starts in the pending state.
func (s *EvaluationsService) Create(ctx context.Context, agentID, testSuiteID string, config map[string]any) (*Evaluation, error) {
	if agentID == "" {
		return nil, fmt.Errorf("agent id is required")
	}
	if testSuiteID == "" {
		return nil, fmt.Errorf("test suite id is required")
	}
	payload, err := json.Marshal(createEvaluationRequest{
		AgentID:     agentID,
		TestSuiteID: testSuiteID,
		Config:      config,
	})
	if err != nil {
		return nil, err
	}
	body, status, err := s.client.post(ctx, "/evaluations", payload)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, decodeServiceError(status, body)
	}
	var eval Evaluation
	if err := unmarshalBody(body, &eval); err != nil {
		return nil, err
	}
	eval.client = s.client
	return &eval, nil
}

// Get fetches the current state of an evaluation.
func (s *EvaluationsService) Get(ctx context.Context, id string) (*Evaluation, error) {
	var eval Evaluation
	if err := s.client.getJSON(ctx, "/evaluations/"+id, &eval); err != nil {
		return nil, err
	}
	eval.client = s.client
	return &eval, nil
}

// ListEvaluationsParams filter and paginate EvaluationsService.List.
type ListEvaluationsParams struct {
	// Page is 1-based. Defaults to 1.
	Page int
	// Limit is the page size, capped at 100. Defaults to 10.
	Limit int
	// Status, when non-empty, restricts the listing to one state.
	Status Status
}

// List returns one page of evaluations for the caller's organization,
// newest first.
func (s *EvaluationsService) List(ctx context.Context, params ListEvaluationsParams) (*EvaluationList, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = 10
	}
	if params.Limit > 100 {
		params.Limit = 100
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("limit", strconv.Itoa(params.Limit))
	if params.Status != "" {
		q.Set("status", string(params.Status))
	}
	var list EvaluationList
	if err := s.client.getJSON(ctx, "/evaluations?"+q.Encode(), &list); err != nil {
		return nil, err
	}
	for _, eval := range list.Evaluations {
		eval.client = s.client
	}
	return &list, nil
}
