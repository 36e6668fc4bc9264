package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"agenteval/pkg/agenteval"
)

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .agenteval/config.yml)")
		page := fs.Int("page", 1, "Page number (1-based)")
		limit := fs.Int("limit", 10, "Page size (max 100)")
		status := fs.String("status", "", "Filter by state: pending|running|completed|failed")
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
			fmt.Fprintf(stderr, "List failed: %v\n", err)
			return ExitError
		}

		ctx, cancel := commandContext()
		defer cancel()

		list, err := client.Evaluations.List(ctx, agenteval.ListEvaluationsParams{
			Page:   *page,
			Limit:  *limit,
			Status: statusFilter,
		})
		if err != nil {
			fmt.Fprintf(stderr, "List failed: %v\n", err)
			return ExitError
		}
		printEvaluationsTable(stdout, list)
		return ExitOK
	}
}
