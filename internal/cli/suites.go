package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// runSuites builds the handler for the suites command.
func runSuites(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}

		project, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		client, err := project.client(nil)
		if err != nil {
			fmt.Fprintf(stderr, "Suites failed: %v\n", err)
			return ExitError
		}

		ctx, cancel := commandContext()
		defer cancel()

		suites, err := client.TestSuites.List(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Suites failed: %v\n", err)
			return ExitError
		}
		printSuitesTable(stdout, suites)
		return ExitOK
	}
}
