package live

import (
	"time"

	"agenteval/pkg/agenteval"
)

// EvaluationRow holds UI state for a single evaluation.
type EvaluationRow struct {
	ID        string
	AgentID   string
	SuiteID   string
	Status    agenteval.Status
	Score     float64
	HasScore  bool
	Grade     string
	CreatedAt time.Time
}

// StatusCounts aggregates evaluations by lifecycle state.
type StatusCounts struct {
	Pending   int
	Running   int
	Completed int
	Failed    int
}

// State captures the live UI state for the watch table.
type State struct {
	Rows       []EvaluationRow
	Counts     StatusCounts
	Total      int
	Page       int
	StartedAt  time.Time
	LastUpdate time.Time
	LastError  string
}
