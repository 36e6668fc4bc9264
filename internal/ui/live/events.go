package live

import (
	"time"

	"agenteval/pkg/agenteval"
)

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventSnapshot delivers a fresh page of evaluations.
	EventSnapshot EventKind = iota
	// EventError reports a failed poll; the previous snapshot stays visible.
	EventError
)

// Event carries a UI update payload.
type Event struct {
	Kind        EventKind
	Evaluations []*agenteval.Evaluation
	Pagination  agenteval.Pagination
	Err         string
	At          time.Time
}
