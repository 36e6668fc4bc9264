package live

import "agenteval/pkg/agenteval"

// Reduce folds a UI event into the watch state.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventSnapshot:
		state.Rows = rowsFromEvaluations(event.Evaluations)
		state.Counts = countStatuses(event.Evaluations)
		state.Total = event.Pagination.Total
		state.Page = event.Pagination.Page
		state.LastUpdate = event.At
		state.LastError = ""
	case EventError:
		state.LastUpdate = event.At
		state.LastError = event.Err
	}
	return state
}

// rowsFromEvaluations converts a snapshot into display rows.
func rowsFromEvaluations(evaluations []*agenteval.Evaluation) []EvaluationRow {
	rows := make([]EvaluationRow, 0, len(evaluations))
	for _, eval := range evaluations {
		if eval == nil {
			continue
		}
		row := EvaluationRow{
			ID:        eval.ID,
			AgentID:   eval.AgentID,
			SuiteID:   eval.TestSuiteID,
			Status:    eval.Status,
			CreatedAt: eval.CreatedAt,
		}
		if eval.Results != nil {
			row.Score = eval.Results.OverallScore
			row.HasScore = true
			row.Grade = eval.Results.Grade()
		}
		rows = append(rows, row)
	}
	return rows
}

// countStatuses tallies evaluations per lifecycle state.
func countStatuses(evaluations []*agenteval.Evaluation) StatusCounts {
	var counts StatusCounts
	for _, eval := range evaluations {
		if eval == nil {
			continue
		}
		switch eval.Status {
		case agenteval.StatusPending:
			counts.Pending++
		case agenteval.StatusRunning:
			counts.Running++
		case agenteval.StatusCompleted:
			counts.Completed++
		case agenteval.StatusFailed:
			counts.Failed++
		}
	}
	return counts
}
