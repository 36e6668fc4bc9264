package agenteval

import (
	"context"
	"errors"
	"time"
)

var errNotAttached = errors.New("evaluation is not attached to a client")

// Refresh re-fetches the evaluation and overwrites the local Status and
// Results with the service's view. Earlier snapshots are discarded.
func (e *Evaluation) Refresh(ctx context.Context) error {
	if e.client == nil {
		return errNotAttached
	}
	fresh, err := e.client.Evaluations.Get(ctx, e.ID)
	if err != nil {
		return err
	}
	e.Status = fresh.Status
	e.Results = fresh.Results
	return nil
}

// WaitForCompletion polls the evaluation at the client's poll interval until
// it reaches a terminal state or the timeout window closes.
//
// On completion it returns the results; a completed evaluation without a
// results payload is reported as *InconsistentStateError. A failed
// evaluation is reported as *EvaluationFailedError. When the window closes
// first it returns *WaitTimeoutError and the remote evaluation keeps
// running. A non-positive timeout returns *WaitTimeoutError without polling
// at all.
//
// The interval is fixed; there is no backoff. A failed poll aborts the wait
// with that poll's error, and ctx cancellation surfaces as ctx.Err().
func (e *Evaluation) WaitForCompletion(ctx context.Context, timeout time.Duration) (*EvaluationResults, error) {
	if e.client == nil {
		return nil, errNotAttached
	}
	c := e.client
	deadline := c.now().Add(timeout)
	for c.now().Before(deadline) {
		if err := e.Refresh(ctx); err != nil {
			return nil, err
		}
		if c.pollObserver != nil {
			c.pollObserver(e)
		}
		switch e.Status {
		case StatusCompleted:
			if e.Results == nil {
				return nil, &InconsistentStateError{EvaluationID: e.ID}
			}
			return e.Results, nil
		case StatusFailed:
			return nil, &EvaluationFailedError{EvaluationID: e.ID}
		}
		if err := c.sleep(ctx, c.pollInterval); err != nil {
			return nil, err
		}
	}
	return nil, &WaitTimeoutError{EvaluationID: e.ID, Timeout: timeout}
}

// Cancel is not supported by the evaluation service; it always returns
// ErrNotSupported without issuing a request. Callers that no longer care
// about an evaluation should simply stop polling it.
func (e *Evaluation) Cancel(ctx context.Context) error {
	return ErrNotSupported
}
