package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"agenteval/pkg/agenteval"
)

// runWebhook builds the handler for the webhook command.
func runWebhook(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .agenteval/config.yml)")
		url := fs.String("url", "", "Webhook delivery URL (required)")
		events := fs.String("events", "", "Comma-separated event names (default: evaluation.completed)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}
		if strings.TrimSpace(*url) == "" {
			fmt.Fprintln(stderr, "Missing --url")
			return ExitUsage
		}

		eventNames, err := parseEventNames(*events)
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
			fmt.Fprintf(stderr, "Webhook failed: %v\n", err)
			return ExitError
		}

		ctx, cancel := commandContext()
		defer cancel()

		hook, err := client.Webhooks.Create(ctx, agenteval.CreateWebhookParams{
			URL:    *url,
			Events: eventNames,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Webhook failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Registered webhook %s\n", hook.ID)
		fmt.Fprintf(stdout, "  URL:    %s\n", hook.URL)
		fmt.Fprintf(stdout, "  Events: %s\n", strings.Join(hook.Events, ", "))
		return ExitOK
	}
}

// parseEventNames splits and validates a comma-separated event list.
// An empty input returns nil so the service default applies.
func parseEventNames(value string) ([]string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	known := map[string]bool{
		agenteval.EventEvaluationStarted:   true,
		agenteval.EventEvaluationCompleted: true,
		agenteval.EventEvaluationFailed:    true,
	}
	parts := strings.Split(trimmed, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if !known[name] {
			return nil, fmt.Errorf("unknown event %q (expected %s, %s or %s)",
				name,
				agenteval.EventEvaluationStarted,
				agenteval.EventEvaluationCompleted,
				agenteval.EventEvaluationFailed,
			)
		}
		names = append(names, name)
	}
	return names, nil
}
