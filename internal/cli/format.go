package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"agenteval/pkg/agenteval"
)

// printSuitesTable renders the test suite catalog as plain columns.
func printSuitesTable(w io.Writer, suites []*agenteval.TestSuite) {
	if len(suites) == 0 {
		fmt.Fprintln(w, "No test suites available.")
		return
	}
	fmt.Fprintf(w, "%-12s %-24s %6s  %s\n", "ID", "NAME", "TESTS", "CATEGORIES")
	for _, suite := range suites {
		if suite == nil {
			continue
		}
		fmt.Fprintf(w, "%-12s %-24s %6d  %s\n",
			suite.ID,
			suite.Name,
			suite.TestCount,
			strings.Join(suite.Categories, ", "),
		)
	}
}

// printEvaluationsTable renders one page of evaluations as plain columns.
func printEvaluationsTable(w io.Writer, list *agenteval.EvaluationList) {
	if list == nil || len(list.Evaluations) == 0 {
		fmt.Fprintln(w, "No evaluations found.")
		return
	}
	fmt.Fprintf(w, "%-14s %-14s %-12s %-10s %7s %-6s %s\n",
		"ID", "AGENT", "SUITE", "STATUS", "SCORE", "GRADE", "CREATED")
	for _, eval := range list.Evaluations {
		if eval == nil {
			continue
		}
		score := "-"
		grade := "-"
		if eval.Results != nil {
			score = fmt.Sprintf("%.3f", eval.Results.OverallScore)
			grade = eval.Results.Grade()
		}
		fmt.Fprintf(w, "%-14s %-14s %-12s %-10s %7s %-6s %s\n",
			truncateColumn(eval.ID, 14),
			truncateColumn(eval.AgentID, 14),
			truncateColumn(eval.TestSuiteID, 12),
			string(eval.Status),
			score,
			grade,
			eval.CreatedAt.UTC().Format("2006-01-02 15:04"),
		)
	}
	p := list.Pagination
	fmt.Fprintf(w, "Page %d/%d (%d evaluations)\n", p.Page, p.TotalPages, p.Total)
}

// printResultsSummary writes the score block for a finished evaluation.
func printResultsSummary(w io.Writer, eval *agenteval.Evaluation, results *agenteval.EvaluationResults) {
	fmt.Fprintf(w, "Evaluation %s completed\n", eval.ID)
	fmt.Fprintf(w, "  Score:     %.3f (%s)\n", results.OverallScore, results.Grade())
	fmt.Fprintf(w, "  Pass rate: %.1f%% (%d/%d tests)\n",
		results.PassRate()*100,
		results.PassedTests,
		results.PassedTests+results.FailedTests,
	)
	if len(results.Categories) > 0 {
		fmt.Fprintln(w, "  Categories:")
		for _, name := range sortedCategoryNames(results.Categories) {
			fmt.Fprintf(w, "    %-20s %.3f\n", name, results.Categories[name])
		}
	}
	if results.ExecutionTimeSeconds > 0 {
		fmt.Fprintf(w, "  Duration:  %.1fs\n", results.ExecutionTimeSeconds)
	}
}

// printEvaluationStatus writes the one-shot status line for an evaluation.
func printEvaluationStatus(w io.Writer, eval *agenteval.Evaluation) {
	fmt.Fprintf(w, "Evaluation %s\n", eval.ID)
	fmt.Fprintf(w, "  Agent:   %s\n", eval.AgentID)
	fmt.Fprintf(w, "  Suite:   %s\n", eval.TestSuiteID)
	fmt.Fprintf(w, "  Status:  %s\n", eval.Status)
	fmt.Fprintf(w, "  Created: %s\n", eval.CreatedAt.UTC().Format(time.RFC3339))
}

// sortedCategoryNames returns category names in stable order.
func sortedCategoryNames(categories map[string]float64) []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// truncateColumn shortens a cell value to fit a plain table column.
func truncateColumn(value string, width int) string {
	if len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}

// parseStatusFlag validates a --status value. Empty means no filter.
func parseStatusFlag(value string) (agenteval.Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "":
		return "", nil
	case string(agenteval.StatusPending),
		string(agenteval.StatusRunning),
		string(agenteval.StatusCompleted),
		string(agenteval.StatusFailed):
		return agenteval.Status(normalized), nil
	default:
		return "", fmt.Errorf("invalid status %q (expected pending|running|completed|failed)", value)
	}
}
