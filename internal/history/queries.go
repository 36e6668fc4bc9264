package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ScoreRow is one scored evaluation as read back from the history database.
type ScoreRow struct {
	EvaluationID string
	AgentID      string
	AgentName    string
	SuiteID      string
	SuiteName    string
	OverallScore float64
	PassRate     float64
	Grade        string
	CreatedAt    time.Time
}

// LatestScores returns the most recent scored evaluation per agent/suite
// pair, ordered by agent then suite name.
func LatestScores(ctx context.Context, db *sql.DB) ([]ScoreRow, error) {
	if db == nil {
		return nil, errors.New("history: db is nil")
	}
	rows, err := db.QueryContext(ctx, `
		SELECT evaluation_id, agent_id, agent_name, suite_id, suite_name,
		       overall_score, pass_rate, grade, created_at
		FROM (
		    SELECT *, row_number() OVER (
		        PARTITION BY agent_id, suite_id
		        ORDER BY created_at DESC, evaluation_id DESC
		    ) AS rn
		    FROM v_scores
		)
		WHERE rn = 1
		ORDER BY agent_name, suite_name`)
	if err != nil {
		return nil, fmt.Errorf("query latest scores: %w", err)
	}
	return scanScoreRows(rows)
}

// ScoreHistory returns every scored evaluation for one agent/suite pair,
// oldest first, so callers can chart score movement over time.
func ScoreHistory(ctx context.Context, db *sql.DB, agentID, suiteID string) ([]ScoreRow, error) {
	if db == nil {
		return nil, errors.New("history: db is nil")
	}
	rows, err := db.QueryContext(ctx, `
		SELECT evaluation_id, agent_id, agent_name, suite_id, suite_name,
		       overall_score, pass_rate, grade, created_at
		FROM v_scores
		WHERE agent_id = ? AND suite_id = ?
		ORDER BY created_at, evaluation_id`,
		agentID, suiteID)
	if err != nil {
		return nil, fmt.Errorf("query score history: %w", err)
	}
	return scanScoreRows(rows)
}

// EvaluationCount returns the number of ingested evaluations.
func EvaluationCount(ctx context.Context, db *sql.DB) (int, error) {
	if db == nil {
		return 0, errors.New("history: db is nil")
	}
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM evaluations").Scan(&count); err != nil {
		return 0, fmt.Errorf("count evaluations: %w", err)
	}
	return count, nil
}

func scanScoreRows(rows *sql.Rows) ([]ScoreRow, error) {
	defer rows.Close()
	out := make([]ScoreRow, 0)
	for rows.Next() {
		var row ScoreRow
		if err := rows.Scan(
			&row.EvaluationID,
			&row.AgentID,
			&row.AgentName,
			&row.SuiteID,
			&row.SuiteName,
			&row.OverallScore,
			&row.PassRate,
			&row.Grade,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan score row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate score rows: %w", err)
	}
	return out, nil
}
