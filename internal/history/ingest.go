package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"agenteval/pkg/agenteval"
)

// UpsertAgent records an agent. Rows are immutable once ingested; re-pulling
// the same agent is a no-op.
func UpsertAgent(ctx context.Context, db *sql.DB, agent *agenteval.Agent) error {
	if db == nil {
		return errors.New("history: db is nil")
	}
	if agent == nil {
		return errors.New("history: agent is nil")
	}
	if agent.ID == "" {
		return errors.New("history: agent id is required")
	}
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO agents (agent_id, name, model, version, org, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (agent_id) DO NOTHING`,
		agent.ID,
		agent.Name,
		agent.Model,
		agent.Version,
		agent.Organization,
		agent.CreatedAt,
	); err != nil {
		return fmt.Errorf("upsert agent: %w", err)
	}
	return nil
}

// UpsertSuite records a test suite catalog entry.
func UpsertSuite(ctx context.Context, db *sql.DB, suite *agenteval.TestSuite) error {
	if db == nil {
		return errors.New("history: db is nil")
	}
	if suite == nil {
		return errors.New("history: suite is nil")
	}
	if suite.ID == "" {
		return errors.New("history: suite id is required")
	}
	query := fmt.Sprintf(
		`INSERT INTO test_suites (suite_id, name, description, test_count, categories, created_at)
		 VALUES (?, ?, ?, ?, %s, ?)
		 ON CONFLICT (suite_id) DO NOTHING`,
		listExpression(suite.Categories),
	)
	if _, err := db.ExecContext(
		ctx,
		query,
		suite.ID,
		suite.Name,
		suite.Description,
		suite.TestCount,
		suite.CreatedAt,
	); err != nil {
		return fmt.Errorf("upsert suite: %w", err)
	}
	return nil
}

// UpsertEvaluation records an evaluation and, when present, its results.
// The config is stored as canonical JSON next to its fingerprint so
// identical configs group together regardless of map ordering.
func UpsertEvaluation(ctx context.Context, db *sql.DB, eval *agenteval.Evaluation) error {
	if db == nil {
		return errors.New("history: db is nil")
	}
	if eval == nil {
		return errors.New("history: evaluation is nil")
	}
	if eval.ID == "" {
		return errors.New("history: evaluation id is required")
	}

	var configValue interface{}
	var configKey interface{}
	if eval.Config != nil {
		canonical, err := CanonicalJSON(eval.Config)
		if err != nil {
			return fmt.Errorf("canonicalize config: %w", err)
		}
		configValue = string(canonical)
		configKey = fingerprintBytes(canonical)
	}

	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO evaluations (evaluation_id, agent_id, suite_id, status, config, config_key, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (evaluation_id) DO NOTHING`,
		eval.ID,
		eval.AgentID,
		eval.TestSuiteID,
		string(eval.Status),
		configValue,
		configKey,
		eval.CreatedAt,
	); err != nil {
		return fmt.Errorf("upsert evaluation: %w", err)
	}

	if eval.Results == nil {
		return nil
	}
	return upsertResults(ctx, db, eval)
}

// upsertResults records the scores of a completed evaluation.
func upsertResults(ctx context.Context, db *sql.DB, eval *agenteval.Evaluation) error {
	results := eval.Results
	query := fmt.Sprintf(
		`INSERT INTO results (
		   result_id, evaluation_id, total_tests, passed, failed,
		   overall_score, pass_rate, grade, category_scores, execution_seconds, completed_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, %s, ?, now())
		 ON CONFLICT (evaluation_id) DO NOTHING`,
		mapExpression(results.Categories),
	)
	if _, err := db.ExecContext(
		ctx,
		query,
		uuid.NewString(),
		eval.ID,
		results.PassedTests+results.FailedTests,
		results.PassedTests,
		results.FailedTests,
		results.OverallScore,
		results.PassRate(),
		results.Grade(),
		results.ExecutionTimeSeconds,
	); err != nil {
		return fmt.Errorf("upsert results: %w", err)
	}
	return nil
}
