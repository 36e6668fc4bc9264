package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  agenteval <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"agenteval <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

// commandContext returns a context cancelled by interrupt signals, for
// commands that block on the network or a server loop.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

var commands = []*Command{
	command("init", "Scaffold .agenteval/config.yml", []string{
		"agenteval init [--config <path>]",
	}, runInit),
	command("validate", "Validate the project config", []string{
		"agenteval validate [--config <path>]",
	}, runValidate),
	command("register", "Register an agent with the evaluation service", []string{
		"agenteval register --name <name> [--model <model>] [--version <version>]",
	}, runRegister),
	command("suites", "List available test suites", []string{
		"agenteval suites",
	}, runSuites),
	command("run", "Start an evaluation and wait for results", []string{
		"agenteval run --agent <agent-id> [--suite <suite-id>] [--no-wait]",
		"agenteval run --agent-name <name> --model <model> [--suite <suite-id>]",
	}, runRun),
	command("status", "Show the current state of an evaluation", []string{
		"agenteval status <eval-id>",
	}, runStatus),
	command("wait", "Block until an evaluation finishes", []string{
		"agenteval wait <eval-id> [--timeout <duration>]",
	}, runWait),
	command("list", "List evaluations", []string{
		"agenteval list [--page <n>] [--limit <n>] [--status <state>]",
	}, runList),
	command("watch", "Watch evaluations in a live table", []string{
		"agenteval watch [--interval <duration>] [--status <state>]",
	}, runWatch),
	command("webhook", "Register a webhook for evaluation events", []string{
		"agenteval webhook --url <url> [--events <e1,e2>]",
	}, runWebhook),
	command("pull", "Pull evaluations into the history database", []string{
		"agenteval pull [--status <state>] [--pages <n>]",
	}, runPull),
	command("report", "Render a score report from history", []string{
		"agenteval report [--html <path>] [--no-color]",
	}, runReport),
	command("serve", "Serve the HTML report and history database", []string{
		"agenteval serve [--addr <host:port>] [db.duckdb]",
	}, runServe),
}
