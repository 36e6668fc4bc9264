// Command generate_fixture builds a deterministic history database for
// report and serve demos and for query benchmarking.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"agenteval/internal/history"
	"agenteval/pkg/agenteval"
)

// fixtureConfig defines the JSON config for generating a history fixture.
type fixtureConfig struct {
	Name        string `json:"name"`
	Agents      int    `json:"agents"`
	Suites      int    `json:"suites"`
	Evaluations int    `json:"evaluations"`
}

func main() {
	configPath := flag.String("config", "", "path to fixture config JSON")
	outPath := flag.String("out", "", "output duckdb file path")
	flag.Parse()
	if *configPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --config <path> --out <duckdb file>")
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(dirOf(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir output dir: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := generateFixture(ctx, *outPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (fixtureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixtureConfig{}, err
	}
	var cfg fixtureConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fixtureConfig{}, err
	}
	if cfg.Agents <= 0 {
		cfg.Agents = 1
	}
	if cfg.Suites <= 0 {
		cfg.Suites = 1
	}
	return cfg, nil
}

func generateFixture(ctx context.Context, path string, cfg fixtureConfig) error {
	if err := removeIfExists(path); err != nil {
		return err
	}
	db, err := history.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	baseTime := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	suites := make([]*agenteval.TestSuite, 0, cfg.Suites)
	for i := 0; i < cfg.Suites; i++ {
		suite := &agenteval.TestSuite{
			ID:         fmt.Sprintf("suite_%03d", i+1),
			Name:       fmt.Sprintf("%s suite %d", cfg.Name, i+1),
			TestCount:  20 + 5*i,
			Categories: []string{"reasoning", "safety"},
			CreatedAt:  baseTime,
		}
		if err := history.UpsertSuite(ctx, db, suite); err != nil {
			return err
		}
		suites = append(suites, suite)
	}

	agents := make([]*agenteval.Agent, 0, cfg.Agents)
	for i := 0; i < cfg.Agents; i++ {
		agent := &agenteval.Agent{
			ID:        deterministicID("agent", i),
			Name:      fmt.Sprintf("%s-bot-%d", cfg.Name, i+1),
			Model:     fixtureModel(i),
			Version:   "1.0.0",
			CreatedAt: baseTime,
		}
		if err := history.UpsertAgent(ctx, db, agent); err != nil {
			return err
		}
		agents = append(agents, agent)
	}

	for i := 0; i < cfg.Evaluations; i++ {
		agent := agents[i%len(agents)]
		suite := suites[i%len(suites)]
		score := fixtureScore(i)
		passed := int(score*float64(suite.TestCount) + 0.5)
		eval := &agenteval.Evaluation{
			ID:          deterministicID("eval", i),
			AgentID:     agent.ID,
			TestSuiteID: suite.ID,
			Status:      agenteval.StatusCompleted,
			CreatedAt:   baseTime.Add(time.Duration(i) * time.Hour),
			Results: &agenteval.EvaluationResults{
				OverallScore:         score,
				PassedTests:          passed,
				FailedTests:          suite.TestCount - passed,
				Categories:           map[string]float64{"reasoning": score, "safety": score - 0.05},
				ExecutionTimeSeconds: 8 + float64(i%7),
			},
		}
		if err := history.UpsertEvaluation(ctx, db, eval); err != nil {
			return err
		}
	}
	return nil
}
