package cli

import (
	"flag"
	"fmt"
	"io"

	"agenteval/internal/ui/live"
	"agenteval/pkg/agenteval"
)

// runWait builds the handler for the wait command.
func runWait(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .agenteval/config.yml)")
		timeout := fs.Duration("timeout", 0, "Wait timeout (defaults to config defaults.wait_timeout_seconds)")
		uiMode := fs.String("ui", "auto", "UI mode while waiting: auto|live|plain")
		noColor := fs.Bool("no-color", false, "Disable colors in the live UI")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() != 1 {
			fmt.Fprintln(stderr, "Usage: agenteval wait <eval-id> [--timeout <duration>]")
			return ExitUsage
		}
		evalID := fs.Arg(0)

		project, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
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

		waitTimeout := *timeout
		if waitTimeout <= 0 {
			waitTimeout = project.waitTimeout()
		}

		var ctrl *live.Controller
		client, err := project.client(func(eval *agenteval.Evaluation) { ctrl.Observe(eval) })
		if err != nil {
			fmt.Fprintf(stderr, "Wait failed: %v\n", err)
			return ExitError
		}

		ctx, cancel := commandContext()
		defer cancel()

		eval, err := client.Evaluations.Get(ctx, evalID)
		if err != nil {
			fmt.Fprintf(stderr, "Wait failed: %v\n", err)
			return ExitError
		}

		if decision.useLive {
			ctrl = live.Start(stdout, live.Options{NoColor: *noColor})
		} else {
			fmt.Fprintf(stdout, "Waiting for evaluation %s (up to %s)...\n", eval.ID, waitTimeout)
		}
		results, err := eval.WaitForCompletion(ctx, waitTimeout)
		if ctrl != nil {
			ctrl.Close()
			ctrl.Wait()
			ctrl = nil
		}
		if err != nil {
			reportWaitError(stderr, err)
			return ExitError
		}
		printResultsSummary(stdout, eval, results)
		return ExitOK
	}
}
