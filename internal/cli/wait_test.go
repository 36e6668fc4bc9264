package cli

import (
	"bytes"
	"strings"
	"testing"

	"agenteval/pkg/agenteval"
)

func TestWaitCommandBlocksUntilCompleted(t *testing.T) {
	results := &agenteval.EvaluationResults{OverallScore: 0.88, PassedTests: 44, FailedTests: 6}
	stub, configPath := startEvalServiceStub(t,
		testEvaluation("eval_run", agenteval.StatusRunning, nil),
		testEvaluation("eval_run", agenteval.StatusCompleted, results),
	)

	var out, err bytes.Buffer
	code := Run([]string{"wait", "--config", configPath, "eval_run"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Waiting for evaluation eval_run") {
		t.Fatalf("expected waiting notice, got %q", out.String())
	}
	if !strings.Contains(out.String(), "0.880 (A)") {
		t.Fatalf("expected results summary, got %q", out.String())
	}
	// One initial get plus one poll that observed the terminal state.
	if stub.polls() != 2 {
		t.Fatalf("expected 2 gets, got %d", stub.polls())
	}
}

func TestWaitCommandTimesOut(t *testing.T) {
	_, configPath := startEvalServiceStub(t, testEvaluation("eval_run", agenteval.StatusRunning, nil))

	var out, err bytes.Buffer
	code := Run([]string{"wait", "--config", configPath, "--timeout", "1ns", "eval_run"}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "still running on the service") {
		t.Fatalf("expected timeout message, got %q", err.String())
	}
}

func TestWaitCommandRequiresEvalID(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"wait"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "Usage: agenteval wait <eval-id>") {
		t.Fatalf("expected usage line, got %q", err.String())
	}
}
