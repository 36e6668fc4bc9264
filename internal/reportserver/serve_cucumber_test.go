//go:build cucumber

package reportserver

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"agenteval/internal/history"
	"agenteval/pkg/agenteval"
)

// TestServeReportScenarios runs the report server feature scenarios.
func TestServeReportScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "spec", "features", "report-serve.feature")
	suite := godog.TestSuite{
		Name:                "report-serve",
		ScenarioInitializer: InitializeServeScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeServeScenario wires steps for report server feature scenarios.
func InitializeServeScenario(ctx *godog.ScenarioContext) {
	state := &serveScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a history database with a completed evaluation$`, state.givenSeededHistory)
	ctx.Step(`^I start the report server$`, state.whenIStartTheReportServer)
	ctx.Step(`^I request "([^"]+)"$`, state.whenIRequest)
	ctx.Step(`^the response status is (\d+)$`, state.thenResponseStatus)
	ctx.Step(`^the response body contains "([^"]+)"$`, state.thenResponseBodyContains)
	ctx.Step(`^the response body equals the history file bytes$`, state.thenResponseBodyEqualsDB)
}

// serveScenarioState holds scenario state for report server feature tests.
type serveScenarioState struct {
	dir      string
	dbPath   string
	db       *sql.DB
	handler  http.Handler
	response *httptest.ResponseRecorder
}

func (s *serveScenarioState) reset() {
	s.dir = ""
	s.dbPath = ""
	s.db = nil
	s.handler = nil
	s.response = nil
}

func (s *serveScenarioState) cleanup() {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.dir != "" {
		_ = os.RemoveAll(s.dir)
	}
}

// givenSeededHistory creates an on-disk history database with one
// completed evaluation.
func (s *serveScenarioState) givenSeededHistory() error {
	dir, err := os.MkdirTemp("", "report-serve-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.dir = dir
	s.dbPath = filepath.Join(dir, "history.duckdb")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := history.Open(ctx, s.dbPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	s.db = db

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	agent := &agenteval.Agent{ID: "agent_1", Name: "support-bot", Model: "gpt-4", CreatedAt: created}
	if err := history.UpsertAgent(ctx, db, agent); err != nil {
		return fmt.Errorf("seed agent: %w", err)
	}
	eval := &agenteval.Evaluation{
		ID:          "eval_1",
		AgentID:     "agent_1",
		TestSuiteID: "suite_001",
		Status:      agenteval.StatusCompleted,
		CreatedAt:   created,
		Results:     &agenteval.EvaluationResults{OverallScore: 0.91, PassedTests: 23, FailedTests: 2},
	}
	if err := history.UpsertEvaluation(ctx, db, eval); err != nil {
		return fmt.Errorf("seed evaluation: %w", err)
	}
	return nil
}

func (s *serveScenarioState) whenIStartTheReportServer() error {
	if s.db == nil {
		return fmt.Errorf("history database is not set")
	}
	handler, err := NewHandler(s.db, Config{DBPath: s.dbPath})
	if err != nil {
		return err
	}
	s.handler = handler
	return nil
}

func (s *serveScenarioState) whenIRequest(path string) error {
	if s.handler == nil {
		return fmt.Errorf("handler not initialized")
	}
	req := httptest.NewRequest(http.MethodGet, "http://example.com"+path, nil)
	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)
	s.response = recorder
	return nil
}

func (s *serveScenarioState) thenResponseStatus(expected int) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	if s.response.Code != expected {
		return fmt.Errorf("expected status %d, got %d", expected, s.response.Code)
	}
	return nil
}

func (s *serveScenarioState) thenResponseBodyContains(snippet string) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	if !strings.Contains(s.response.Body.String(), snippet) {
		return fmt.Errorf("expected response to contain %q", snippet)
	}
	return nil
}

func (s *serveScenarioState) thenResponseBodyEqualsDB() error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	want, err := os.ReadFile(s.dbPath)
	if err != nil {
		return fmt.Errorf("read history file: %w", err)
	}
	if got := s.response.Body.Bytes(); string(got) != string(want) {
		return fmt.Errorf("response body did not match history file bytes")
	}
	return nil
}
