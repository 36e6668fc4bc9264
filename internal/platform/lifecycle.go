package platform

import (
	"time"

	"agenteval/pkg/agenteval"
)

// advanceLocked moves rec to the state its age dictates and returns the
// transition events that fired. Terminal records never change again.
func (s *Store) advanceLocked(rec *evalRecord, now time.Time) []Event {
	if rec.eval.Status.Terminal() {
		return nil
	}
	age := now.Sub(rec.eval.CreatedAt)
	var events []Event
	if rec.eval.Status == agenteval.StatusPending && age >= s.timings.PendingFor {
		rec.eval.Status = agenteval.StatusRunning
		events = append(events, Event{Type: agenteval.EventEvaluationStarted, Evaluation: rec.eval})
	}
	if rec.eval.Status == agenteval.StatusRunning && age >= s.timings.PendingFor+s.timings.RunningFor {
		s.finishLocked(rec)
		evType := agenteval.EventEvaluationCompleted
		if rec.eval.Status == agenteval.StatusFailed {
			evType = agenteval.EventEvaluationFailed
		}
		events = append(events, Event{Type: evType, Evaluation: rec.eval})
	}
	return events
}

// finishLocked assigns the terminal state. The simulate config key forces
// failure modes: "failure" fails the evaluation, "missing_results" completes
// it without a results payload.
func (s *Store) finishLocked(rec *evalRecord) {
	switch simulateValue(rec.eval.Config) {
	case "failure":
		rec.eval.Status = agenteval.StatusFailed
		return
	case "missing_results":
		rec.eval.Status = agenteval.StatusCompleted
		return
	}
	rec.eval.Status = agenteval.StatusCompleted
	results := scoreEvaluation(rec.eval, s.suites[rec.eval.TestSuiteID], s.timings)
	rec.eval.Results = &results
}

func simulateValue(config map[string]any) string {
	if config == nil {
		return ""
	}
	v, _ := config["simulate"].(string)
	return v
}
