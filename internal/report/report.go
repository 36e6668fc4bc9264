// Package report builds score reports from the local history database.
package report

import (
	"context"
	"database/sql"
	"time"

	"agenteval/internal/history"
)

// Data is the fully resolved input for report rendering. Rendering is
// pure: all database access happens in Build.
type Data struct {
	GeneratedAt time.Time
	Rows        []history.ScoreRow
	Evaluations int
}

// Build collects the latest score per agent/suite pair plus summary
// counts from the history database.
func Build(ctx context.Context, db *sql.DB, now time.Time) (Data, error) {
	rows, err := history.LatestScores(ctx, db)
	if err != nil {
		return Data{}, err
	}
	count, err := history.EvaluationCount(ctx, db)
	if err != nil {
		return Data{}, err
	}
	return Data{
		GeneratedAt: now,
		Rows:        rows,
		Evaluations: count,
	}, nil
}
