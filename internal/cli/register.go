package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"agenteval/pkg/agenteval"
)

// runRegister builds the handler for the register command.
func runRegister(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .agenteval/config.yml)")
		name := fs.String("name", "", "Agent name (required)")
		model := fs.String("model", "", "Model identifier, e.g. gpt-4")
		version := fs.String("version", "", "Agent version")
		description := fs.String("description", "", "Agent description")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}
		if strings.TrimSpace(*name) == "" {
			fmt.Fprintln(stderr, "Missing --name")
			return ExitUsage
		}

		project, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		client, err := project.client(nil)
		if err != nil {
			fmt.Fprintf(stderr, "Register failed: %v\n", err)
			return ExitError
		}

		ctx, cancel := commandContext()
		defer cancel()

		agent, err := client.Agents.Create(ctx, agenteval.CreateAgentParams{
			Name:        *name,
			Model:       *model,
			Version:     *version,
			Description: *description,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Register failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Registered agent %s\n", agent.ID)
		fmt.Fprintf(stdout, "  Name:    %s\n", agent.Name)
		fmt.Fprintf(stdout, "  Model:   %s\n", agent.Model)
		fmt.Fprintf(stdout, "  Version: %s\n", agent.Version)
		return ExitOK
	}
}
