package cli

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"agenteval/internal/history"
	"agenteval/pkg/agenteval"
)

// runPull builds the handler for the pull command.
func runPull(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .agenteval/config.yml)")
		status := fs.String("status", "completed", "Pull evaluations in this state (empty for all)")
		pages := fs.Int("pages", 0, "Maximum pages to pull (0 for all)")
		limit := fs.Int("limit", 50, "Page size (max 100)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}

		statusFilter, err := parseStatusFlag(*status)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}

		project, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		client, err := project.client(nil)
		if err != nil {
			fmt.Fprintf(stderr, "Pull failed: %v\n", err)
			return ExitError
		}

		ctx, cancel := commandContext()
		defer cancel()

		dbPath := project.historyPath()
		db, err := history.Open(ctx, dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Pull failed: %v\n", err)
			return ExitError
		}
		defer db.Close()

		before, err := history.EvaluationCount(ctx, db)
		if err != nil {
			fmt.Fprintf(stderr, "Pull failed: %v\n", err)
			return ExitError
		}

		pulled, err := pullEvaluations(ctx, client, db, statusFilter, *pages, *limit)
		if err != nil {
			fmt.Fprintf(stderr, "Pull failed: %v\n", err)
			return ExitError
		}

		after, err := history.EvaluationCount(ctx, db)
		if err != nil {
			fmt.Fprintf(stderr, "Pull failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Pulled %d evaluations (%d new) into %s\n", pulled, after-before, dbPath)
		return ExitOK
	}
}

// pullEvaluations pages through the list endpoint and ingests every
// evaluation, the suite catalog, and the agents the evaluations reference.
// It returns the number of evaluations seen.
func pullEvaluations(ctx context.Context, client *agenteval.Client, db *sql.DB, status agenteval.Status, maxPages, limit int) (int, error) {
	suites, err := client.TestSuites.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list test suites: %w", err)
	}
	for _, suite := range suites {
		if err := history.UpsertSuite(ctx, db, suite); err != nil {
			return 0, err
		}
	}

	// The service has no list-agents endpoint, so agent rows are resolved
	// one Get per distinct agent id.
	seenAgents := map[string]bool{}
	pulled := 0
	for page := 1; ; page++ {
		list, err := client.Evaluations.List(ctx, agenteval.ListEvaluationsParams{
			Page:   page,
			Limit:  limit,
			Status: status,
		})
		if err != nil {
			return pulled, fmt.Errorf("list evaluations page %d: %w", page, err)
		}
		for _, eval := range list.Evaluations {
			if eval == nil {
				continue
			}
			if !seenAgents[eval.AgentID] {
				seenAgents[eval.AgentID] = true
				if err := pullAgent(ctx, client, db, eval.AgentID); err != nil {
					return pulled, err
				}
			}
			if err := history.UpsertEvaluation(ctx, db, eval); err != nil {
				return pulled, err
			}
			pulled++
		}
		if page >= list.Pagination.TotalPages {
			break
		}
		if maxPages > 0 && page >= maxPages {
			break
		}
	}
	return pulled, nil
}

// pullAgent ingests one agent row. A missing agent is skipped rather than
// failing the pull; the score view falls back to the agent id.
func pullAgent(ctx context.Context, client *agenteval.Client, db *sql.DB, agentID string) error {
	agent, err := client.Agents.Get(ctx, agentID)
	if err != nil {
		var svcErr *agenteval.ServiceError
		if errors.As(err, &svcErr) && svcErr.Code == agenteval.CodeNotFound {
			return nil
		}
		return fmt.Errorf("get agent %s: %w", agentID, err)
	}
	return history.UpsertAgent(ctx, db, agent)
}
