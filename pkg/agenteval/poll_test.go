package agenteval

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeTime drives the wait loop deterministically: every sleep advances the
// clock by the requested duration instead of blocking.
type fakeTime struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeTime() *fakeTime {
	return &fakeTime{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (f *fakeTime) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeTime) Sleep(ctx context.Context, d time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sleeps = append(f.sleeps, d)
	f.now = f.now.Add(d)
	return nil
}

func (f *fakeTime) sleepCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sleeps)
}

func installFakeTime(client *Client) *fakeTime {
	ft := newFakeTime()
	client.now = ft.Now
	client.sleep = ft.Sleep
	return ft
}

// scriptedEvaluation serves a fixed sequence of evaluation snapshots; the
// last one repeats once the script is exhausted.
type scriptedEvaluation struct {
	mu     sync.Mutex
	states []Evaluation
	calls  int
}

func (s *scriptedEvaluation) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	idx := s.calls
	if idx >= len(s.states) {
		idx = len(s.states) - 1
	}
	s.calls++
	state := s.states[idx]
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

func (s *scriptedEvaluation) polls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func snapshot(status Status, results *EvaluationResults) Evaluation {
	return Evaluation{ID: "eval_1", AgentID: "agent_1", TestSuiteID: "suite_001", Status: status, Results: results}
}

func attachedEvaluation(client *Client) *Evaluation {
	return &Evaluation{ID: "eval_1", Status: StatusPending, client: client}
}

func TestWaitForCompletionZeroTimeoutDoesNotPoll(t *testing.T) {
	script := &scriptedEvaluation{states: []Evaluation{snapshot(StatusRunning, nil)}}
	client := newTestClient(t, script)
	installFakeTime(client)
	eval := attachedEvaluation(client)

	_, err := eval.WaitForCompletion(context.Background(), 0)
	var timeoutErr *WaitTimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected WaitTimeoutError, got %v", err)
	}
	if script.polls() != 0 {
		t.Errorf("expected zero polls, got %d", script.polls())
	}

	_, err = eval.WaitForCompletion(context.Background(), -time.Second)
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected WaitTimeoutError for negative timeout, got %v", err)
	}
	if script.polls() != 0 {
		t.Errorf("expected zero polls for negative timeout, got %d", script.polls())
	}
}

func TestWaitForCompletionReturnsResultsAfterProgression(t *testing.T) {
	results := &EvaluationResults{OverallScore: 0.87, PassedTests: 40, FailedTests: 10}
	script := &scriptedEvaluation{states: []Evaluation{
		snapshot(StatusPending, nil),
		snapshot(StatusRunning, nil),
		snapshot(StatusCompleted, results),
	}}
	client := newTestClient(t, script)
	ft := installFakeTime(client)
	eval := attachedEvaluation(client)

	got, err := eval.WaitForCompletion(context.Background(), time.Minute)
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if got.OverallScore != 0.87 || got.PassedTests != 40 || got.FailedTests != 10 {
		t.Errorf("unexpected results: %+v", got)
	}
	if script.polls() != 3 {
		t.Errorf("expected exactly 3 polls, got %d", script.polls())
	}
	if ft.sleepCount() != 2 {
		t.Errorf("expected 2 sleeps, got %d", ft.sleepCount())
	}
	for _, d := range ft.sleeps {
		if d != DefaultPollInterval {
			t.Errorf("expected fixed %s interval, got %s", DefaultPollInterval, d)
		}
	}
	if eval.Status != StatusCompleted {
		t.Errorf("expected local status updated to completed, got %s", eval.Status)
	}
}

func TestWaitForCompletionFailedEvaluation(t *testing.T) {
	script := &scriptedEvaluation{states: []Evaluation{snapshot(StatusFailed, nil)}}
	client := newTestClient(t, script)
	ft := installFakeTime(client)
	eval := attachedEvaluation(client)

	_, err := eval.WaitForCompletion(context.Background(), time.Minute)
	var failedErr *EvaluationFailedError
	if !errors.As(err, &failedErr) {
		t.Fatalf("expected EvaluationFailedError, got %v", err)
	}
	if failedErr.EvaluationID != "eval_1" {
		t.Errorf("expected evaluation id in error, got %q", failedErr.EvaluationID)
	}
	if script.polls() != 1 {
		t.Errorf("expected a single poll, got %d", script.polls())
	}
	if ft.sleepCount() != 0 {
		t.Errorf("expected no sleeps, got %d", ft.sleepCount())
	}
}

func TestWaitForCompletionCompletedWithoutResults(t *testing.T) {
	script := &scriptedEvaluation{states: []Evaluation{snapshot(StatusCompleted, nil)}}
	client := newTestClient(t, script)
	installFakeTime(client)
	eval := attachedEvaluation(client)

	_, err := eval.WaitForCompletion(context.Background(), time.Minute)
	var stateErr *InconsistentStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected InconsistentStateError, got %v", err)
	}
	if stateErr.EvaluationID != "eval_1" {
		t.Errorf("expected evaluation id in error, got %q", stateErr.EvaluationID)
	}
}

func TestWaitForCompletionTimesOutWhileRunning(t *testing.T) {
	script := &scriptedEvaluation{states: []Evaluation{snapshot(StatusRunning, nil)}}
	client := newTestClient(t, script)
	ft := installFakeTime(client)
	start := ft.Now()
	eval := attachedEvaluation(client)

	timeout := 5 * time.Second
	_, err := eval.WaitForCompletion(context.Background(), timeout)
	var timeoutErr *WaitTimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected WaitTimeoutError, got %v", err)
	}
	if timeoutErr.Timeout != timeout {
		t.Errorf("expected timeout %s in error, got %s", timeout, timeoutErr.Timeout)
	}
	// Polls land at t=0s, 2s, 4s; the loop exits at 6s, within one
	// interval past the 5s budget.
	if script.polls() != 3 {
		t.Errorf("expected 3 polls, got %d", script.polls())
	}
	elapsed := ft.Now().Sub(start)
	if elapsed < timeout || elapsed > timeout+DefaultPollInterval {
		t.Errorf("expected elapsed within one interval past the budget, got %s", elapsed)
	}
}

func TestWaitForCompletionAbortsOnPollError(t *testing.T) {
	var calls int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(t, w, http.StatusInternalServerError, map[string]string{"error": "backend down"})
	})
	client := newTestClient(t, handler)
	installFakeTime(client)
	eval := attachedEvaluation(client)

	_, err := eval.WaitForCompletion(context.Background(), time.Minute)
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if svcErr.Code != CodeServer {
		t.Errorf("expected code %s, got %s", CodeServer, svcErr.Code)
	}
	if calls != 1 {
		t.Errorf("expected the wait to abort after one failed poll, got %d polls", calls)
	}
}

func TestWaitForCompletionContextCancellation(t *testing.T) {
	script := &scriptedEvaluation{states: []Evaluation{snapshot(StatusRunning, nil)}}
	srvClient := newTestClient(t, script)
	srvClient.pollInterval = 5 * time.Millisecond
	eval := attachedEvaluation(srvClient)

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()
	_, err := eval.WaitForCompletion(ctx, time.Minute)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline error, got %v", err)
	}
}

func TestWaitForCompletionNotifiesObserver(t *testing.T) {
	results := &EvaluationResults{OverallScore: 0.95, PassedTests: 10}
	script := &scriptedEvaluation{states: []Evaluation{
		snapshot(StatusRunning, nil),
		snapshot(StatusCompleted, results),
	}}
	srv := httptestServer(t, script)
	var seen []Status
	client, err := NewWithConfig(Config{
		APIKey:  "test-key",
		BaseURL: srv,
		PollObserver: func(e *Evaluation) {
			seen = append(seen, e.Status)
		},
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	installFakeTime(client)
	eval := attachedEvaluation(client)

	if _, err := eval.WaitForCompletion(context.Background(), time.Minute); err != nil {
		t.Fatalf("wait: %v", err)
	}
	want := []Status{StatusRunning, StatusCompleted}
	if len(seen) != len(want) {
		t.Fatalf("expected %d observer calls, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("observer call %d: expected %s, got %s", i, want[i], seen[i])
		}
	}
}

func TestRefreshOverwritesLocalState(t *testing.T) {
	results := &EvaluationResults{OverallScore: 0.91, PassedTests: 22, FailedTests: 3}
	script := &scriptedEvaluation{states: []Evaluation{snapshot(StatusCompleted, results)}}
	client := newTestClient(t, script)
	eval := attachedEvaluation(client)
	eval.Status = StatusRunning
	eval.Results = &EvaluationResults{OverallScore: 0.1}

	if err := eval.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if eval.Status != StatusCompleted {
		t.Errorf("expected status overwritten to completed, got %s", eval.Status)
	}
	if eval.Results == nil || eval.Results.OverallScore != 0.91 {
		t.Errorf("expected results overwritten from the service, got %+v", eval.Results)
	}
}

func TestRefreshRequiresAttachedClient(t *testing.T) {
	eval := &Evaluation{ID: "eval_1"}
	if err := eval.Refresh(context.Background()); err == nil {
		t.Fatal("expected an error for a detached evaluation")
	}
	if _, err := eval.WaitForCompletion(context.Background(), time.Second); err == nil {
		t.Fatal("expected an error for a detached evaluation")
	}
}

func TestCancelNotSupported(t *testing.T) {
	script := &scriptedEvaluation{states: []Evaluation{snapshot(StatusRunning, nil)}}
	client := newTestClient(t, script)
	eval := attachedEvaluation(client)

	err := eval.Cancel(context.Background())
	if !errors.Is(err, ErrNotSupported) {
		t.Fatalf("expected ErrNotSupported, got %v", err)
	}
	if script.polls() != 0 {
		t.Errorf("expected no requests for cancel, got %d", script.polls())
	}
}

func TestTerminalStatuses(t *testing.T) {
	cases := []struct {
		status   Status
		terminal bool
	}{
		{StatusPending, false},
		{StatusRunning, false},
		{StatusCompleted, true},
		{StatusFailed, true},
	}
	for _, tc := range cases {
		if got := tc.status.Terminal(); got != tc.terminal {
			t.Errorf("%s: expected terminal=%v, got %v", tc.status, tc.terminal, got)
		}
	}
}
