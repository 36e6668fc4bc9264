package agenteval

import "time"

// Status is the lifecycle state of an evaluation.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether the status is final. Terminal evaluations never
// change state again; only Refresh against the service can reveal a
// transition for non-terminal ones.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Webhook event names published by the evaluation service.
const (
	EventEvaluationStarted   = "evaluation.started"
	EventEvaluationCompleted = "evaluation.completed"
	EventEvaluationFailed    = "evaluation.failed"
)

// Agent is an AI agent registered for evaluation.
type Agent struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Model        string         `json:"model"`
	Version      string         `json:"version"`
	Description  string         `json:"description,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	Organization string         `json:"organization,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// TestSuite is a catalog entry describing a set of evaluation tests.
type TestSuite struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TestCount   int       `json:"test_count"`
	Categories  []string  `json:"categories,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Evaluation is a single run of a test suite against an agent.
//
// Results is non-nil exactly when Status is StatusCompleted; the wait loop
// reports a completed evaluation without results as InconsistentStateError.
// Evaluations obtained from a Client stay attached to it and support
// Refresh, WaitForCompletion and Cancel.
type Evaluation struct {
	ID           string             `json:"id"`
	AgentID      string             `json:"agent_id"`
	TestSuiteID  string             `json:"test_suite_id"`
	Status       Status             `json:"status"`
	Config       map[string]any     `json:"config,omitempty"`
	Organization string             `json:"organization,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	Results      *EvaluationResults `json:"results,omitempty"`

	client *Client
}

// Terminal reports whether the evaluation has reached a final state.
func (e *Evaluation) Terminal() bool {
	return e.Status.Terminal()
}

// EvaluationResults holds the scores of a completed evaluation.
type EvaluationResults struct {
	OverallScore         float64            `json:"overall_score"`
	PassedTests          int                `json:"passed_tests"`
	FailedTests          int                `json:"failed_tests"`
	Categories           map[string]float64 `json:"categories,omitempty"`
	ExecutionTimeSeconds float64            `json:"execution_time_seconds"`
}

// PassRate is the fraction of tests that passed, in [0, 1].
// It is 0 when no tests were recorded.
func (r *EvaluationResults) PassRate() float64 {
	total := r.PassedTests + r.FailedTests
	if total == 0 {
		return 0
	}
	return float64(r.PassedTests) / float64(total)
}

// Grade maps the overall score to a letter grade.
func (r *EvaluationResults) Grade() string {
	switch {
	case r.OverallScore >= 0.9:
		return "A+"
	case r.OverallScore >= 0.85:
		return "A"
	case r.OverallScore >= 0.8:
		return "B"
	case r.OverallScore >= 0.7:
		return "C"
	case r.OverallScore >= 0.6:
		return "D"
	default:
		return "F"
	}
}

// Pagination describes one page of a listed collection.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// EvaluationList is one page of evaluations.
type EvaluationList struct {
	Evaluations []*Evaluation `json:"evaluations"`
	Pagination  Pagination    `json:"pagination"`
}

// Webhook is a registered event notification target.
type Webhook struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Events    []string  `json:"events"`
	CreatedAt time.Time `json:"created_at"`
}

// Health is the service health report.
type Health struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}
