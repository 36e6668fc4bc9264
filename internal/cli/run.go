package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"agenteval/internal/ui/live"
	"agenteval/pkg/agenteval"
)

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .agenteval/config.yml)")
		agentID := fs.String("agent", "", "Agent id to evaluate (defaults to config defaults.agent)")
		agentName := fs.String("agent-name", "", "Register a new agent with this name and evaluate it")
		model := fs.String("model", "", "Model for --agent-name registration")
		suiteID := fs.String("suite", "", "Test suite id (defaults to config defaults.test_suite)")
		noWait := fs.Bool("no-wait", false, "Start the evaluation and exit without waiting")
		timeout := fs.Duration("timeout", 0, "Wait timeout (defaults to config defaults.wait_timeout_seconds)")
		uiMode := fs.String("ui", "auto", "UI mode while waiting: auto|live|plain")
		noColor := fs.Bool("no-color", false, "Disable colors in the live UI")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}

		project, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		suite := strings.TrimSpace(*suiteID)
		if suite == "" {
			suite = project.cfg.Defaults.TestSuite
		}
		agent := strings.TrimSpace(*agentID)
		if agent == "" {
			agent = strings.TrimSpace(project.cfg.Defaults.Agent)
		}
		quickName := strings.TrimSpace(*agentName)
		if quickName == "" && agent == "" {
			fmt.Fprintln(stderr, "Missing --agent or --agent-name (no defaults.agent configured)")
			return ExitUsage
		}
		if quickName != "" && strings.TrimSpace(*model) == "" {
			fmt.Fprintln(stderr, "Missing --model (required with --agent-name)")
			return ExitUsage
		}

		wait := !*noWait
		waitTimeout := *timeout
		if waitTimeout <= 0 {
			waitTimeout = project.waitTimeout()
		}

		var decision uiModeDecision
		if wait {
			decision, err = resolveUIMode(*uiMode, stdout)
			if err != nil {
				fmt.Fprintf(stderr, "%v\n", err)
				return ExitUsage
			}
			if decision.warning != "" {
				fmt.Fprintln(stderr, decision.warning)
			}
		}

		// The observer reads ctrl at call time, so the controller can start
		// after the client is built. Observe is a no-op until then.
		var ctrl *live.Controller
		client, err := project.client(func(eval *agenteval.Evaluation) { ctrl.Observe(eval) })
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		ctx, cancel := commandContext()
		defer cancel()

		closeUI := func() {
			if ctrl == nil {
				return
			}
			ctrl.Close()
			ctrl.Wait()
			ctrl = nil
		}

		if quickName != "" {
			if wait && decision.useLive {
				ctrl = live.Start(stdout, live.Options{NoColor: *noColor})
			}
			eval, results, err := client.QuickEvaluate(ctx, agenteval.QuickEvaluateParams{
				AgentName:   quickName,
				AgentModel:  *model,
				TestSuiteID: suite,
				NoWait:      *noWait,
				WaitTimeout: waitTimeout,
			})
			closeUI()
			if err != nil {
				reportWaitError(stderr, err)
				return ExitError
			}
			if *noWait {
				fmt.Fprintf(stdout, "Created evaluation %s for agent %s (status: %s)\n", eval.ID, eval.AgentID, eval.Status)
				fmt.Fprintf(stdout, "Check progress with: agenteval status %s\n", eval.ID)
				return ExitOK
			}
			printResultsSummary(stdout, eval, results)
			return ExitOK
		}

		eval, err := client.Evaluations.Create(ctx, agent, suite, nil)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		if !wait {
			fmt.Fprintf(stdout, "Created evaluation %s (status: %s)\n", eval.ID, eval.Status)
			fmt.Fprintf(stdout, "Check progress with: agenteval status %s\n", eval.ID)
			return ExitOK
		}

		if decision.useLive {
			ctrl = live.Start(stdout, live.Options{NoColor: *noColor})
		} else {
			fmt.Fprintf(stdout, "Created evaluation %s, waiting up to %s...\n", eval.ID, waitTimeout)
		}
		results, err := eval.WaitForCompletion(ctx, waitTimeout)
		closeUI()
		if err != nil {
			reportWaitError(stderr, err)
			return ExitError
		}
		printResultsSummary(stdout, eval, results)
		return ExitOK
	}
}

// reportWaitError prints a wait failure using the SDK error taxonomy.
func reportWaitError(stderr io.Writer, err error) {
	var failed *agenteval.EvaluationFailedError
	var timedOut *agenteval.WaitTimeoutError
	var inconsistent *agenteval.InconsistentStateError
	switch {
	case errors.As(err, &failed):
		fmt.Fprintf(stderr, "Evaluation %s failed.\n", failed.EvaluationID)
	case errors.As(err, &timedOut):
		fmt.Fprintf(stderr, "Timed out after %s; evaluation %s is still running on the service.\n",
			formatTimeout(timedOut.Timeout), timedOut.EvaluationID)
	case errors.As(err, &inconsistent):
		fmt.Fprintf(stderr, "Evaluation %s reported completed without results; inspect it with status.\n",
			inconsistent.EvaluationID)
	default:
		fmt.Fprintf(stderr, "Wait failed: %v\n", err)
	}
}

func formatTimeout(d time.Duration) string {
	return d.Round(time.Second).String()
}
