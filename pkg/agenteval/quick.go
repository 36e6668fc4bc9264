package agenteval

import (
	"context"
	"fmt"
	"time"
)

// DefaultWaitTimeout bounds QuickEvaluate's wait for completion.
const DefaultWaitTimeout = 5 * time.Minute

// QuickEvaluateParams are the inputs for Client.QuickEvaluate.
type QuickEvaluateParams struct {
	// AgentName names the throwaway agent. Required.
	AgentName string
	// AgentModel identifies the model under test, e.g. "gpt-4". Required.
	AgentModel string
	// TestSuiteID defaults to "suite_001".
	TestSuiteID string
	// NoWait returns right after the evaluation is created instead of
	// blocking for results.
	NoWait bool
	// WaitTimeout bounds the wait. Defaults to DefaultWaitTimeout.
	WaitTimeout time.Duration
}

// QuickEvaluate registers an agent and immediately evaluates it. Unless
// NoWait is set it blocks until the evaluation finishes and returns the
// results alongside the evaluation. With NoWait the results are nil and the
// evaluation can be polled later.
func (c *Client) QuickEvaluate(ctx context.Context, params QuickEvaluateParams) (*Evaluation, *EvaluationResults, error) {
	if params.AgentName == "" {
		return nil, nil, fmt.Errorf("agent name is required")
	}
	if params.AgentModel == "" {
		return nil, nil, fmt.Errorf("agent model is required")
	}
	if params.TestSuiteID == "" {
		params.TestSuiteID = "suite_001"
	}
	if params.WaitTimeout <= 0 {
		params.WaitTimeout = DefaultWaitTimeout
	}
	agent, err := c.Agents.Create(ctx, CreateAgentParams{Name: params.AgentName, Model: params.AgentModel})
	if err != nil {
		return nil, nil, fmt.Errorf("create agent: %w", err)
	}
	eval, err := c.Evaluations.Create(ctx, agent.ID, params.TestSuiteID, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create evaluation: %w", err)
	}
	if params.NoWait {
		return eval, nil, nil
	}
	results, err := eval.WaitForCompletion(ctx, params.WaitTimeout)
	if err != nil {
		return eval, nil, err
	}
	return eval, results, nil
}
