package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"agenteval/internal/history"
	"agenteval/internal/report"
)

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .agenteval/config.yml)")
		htmlPath := fs.String("html", "", "Also write the HTML report to this path")
		noColor := fs.Bool("no-color", false, "Disable colors in terminal output")
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

		dbPath := project.historyPath()
		if _, err := os.Stat(dbPath); err != nil {
			fmt.Fprintf(stderr, "No history database at %s (run \"agenteval pull\" first)\n", dbPath)
			return ExitError
		}

		ctx, cancel := commandContext()
		defer cancel()

		db, err := history.Open(ctx, dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		defer db.Close()

		data, err := report.Build(ctx, db, time.Now())
		if err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}

		fmt.Fprint(stdout, report.RenderText(data, *noColor))

		if strings.TrimSpace(*htmlPath) != "" {
			html, err := report.RenderHTML(ctx, data)
			if err != nil {
				fmt.Fprintf(stderr, "Report failed: %v\n", err)
				return ExitError
			}
			if err := os.WriteFile(*htmlPath, []byte(html), 0o644); err != nil {
				fmt.Fprintf(stderr, "Report failed: write html: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Wrote %s\n", *htmlPath)
		}
		return ExitOK
	}
}
