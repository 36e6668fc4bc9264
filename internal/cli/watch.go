package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"agenteval/internal/ui/live"
	"agenteval/pkg/agenteval"
)

// watchContext is a test seam for bounding the watch loop.
var watchContext = commandContext

// runWatch builds the handler for the watch command.
func runWatch(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .agenteval/config.yml)")
		interval := fs.Duration("interval", 0, "Poll interval (defaults to config watch.interval_seconds)")
		limit := fs.Int("limit", 0, "Page size (defaults to config watch.page_limit)")
		status := fs.String("status", "", "Filter by state: pending|running|completed|failed")
		uiMode := fs.String("ui", "auto", "UI mode: auto|live|plain")
		noColor := fs.Bool("no-color", false, "Disable colors in the live UI")
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
			fmt.Fprintf(stderr, "Watch failed: %v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		pollInterval := *interval
		if pollInterval <= 0 {
			pollInterval = project.watchInterval()
		}
		pageLimit := *limit
		if pageLimit <= 0 {
			pageLimit = project.cfg.Watch.PageLimit
		}
		params := agenteval.ListEvaluationsParams{Limit: pageLimit, Status: statusFilter}

		ctx, cancel := watchContext()
		defer cancel()

		if decision.useLive {
			ctrl := live.Start(stdout, live.Options{NoColor: *noColor})
			poller := live.NewPoller(client, params, pollInterval)
			go poller.Run(ctx, ctrl)
			ctrl.Wait()
			return ExitOK
		}
		return watchPlain(ctx, client, params, pollInterval, stdout)
	}
}

// watchPlain polls the list endpoint and prints a status line per snapshot.
// It runs until the context is cancelled.
func watchPlain(ctx context.Context, client *agenteval.Client, params agenteval.ListEvaluationsParams, interval time.Duration, stdout io.Writer) int {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		list, err := client.Evaluations.List(ctx, params)
		switch {
		case err != nil && ctx.Err() != nil:
			return ExitOK
		case err != nil:
			fmt.Fprintf(stdout, "%s poll failed: %v\n", time.Now().UTC().Format("15:04:05"), err)
		default:
			fmt.Fprintf(stdout, "%s %s\n", time.Now().UTC().Format("15:04:05"), statusCountsLine(list))
		}
		select {
		case <-ctx.Done():
			return ExitOK
		case <-ticker.C:
		}
	}
}

// statusCountsLine summarizes one list snapshot as state counts.
func statusCountsLine(list *agenteval.EvaluationList) string {
	var pending, running, completed, failed int
	for _, eval := range list.Evaluations {
		if eval == nil {
			continue
		}
		switch eval.Status {
		case agenteval.StatusPending:
			pending++
		case agenteval.StatusRunning:
			running++
		case agenteval.StatusCompleted:
			completed++
		case agenteval.StatusFailed:
			failed++
		}
	}
	return fmt.Sprintf("pending=%d running=%d completed=%d failed=%d (total %d)",
		pending, running, completed, failed, list.Pagination.Total)
}
