package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"agenteval/pkg/agenteval"
)

// runStatus builds the handler for the status command.
func runStatus(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .agenteval/config.yml)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() != 1 {
			fmt.Fprintln(stderr, "Usage: agenteval status <eval-id>")
			return ExitUsage
		}
		evalID := fs.Arg(0)

		project, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		client, err := project.client(nil)
		if err != nil {
			fmt.Fprintf(stderr, "Status failed: %v\n", err)
			return ExitError
		}

		ctx, cancel := commandContext()
		defer cancel()

		eval, err := client.Evaluations.Get(ctx, evalID)
		if err != nil {
			var svcErr *agenteval.ServiceError
			if errors.As(err, &svcErr) && svcErr.Code == agenteval.CodeNotFound {
				fmt.Fprintf(stderr, "Evaluation not found: %s\n", evalID)
				return ExitError
			}
			fmt.Fprintf(stderr, "Status failed: %v\n", err)
			return ExitError
		}

		printEvaluationStatus(stdout, eval)
		if eval.Results != nil {
			fmt.Fprintln(stdout)
			printResultsSummary(stdout, eval, eval.Results)
		}
		return ExitOK
	}
}
