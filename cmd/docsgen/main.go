// docsgen scaffolds and builds the SDK documentation site.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agenteval/internal/docs"
)

func main() {
	os.Exit(run())
}

func run() int {
	tool := flag.String("tool", "all", "documentation tool: mkdocs, hugo, gomarkdoc, all, or compare")
	setup := flag.Bool("setup", false, "create the docs directory skeleton and probe installed tools")
	dir := flag.String("dir", ".", "project root where configs and the docs tree are written")
	siteName := flag.String("site-name", "Agent Evaluation SDK", "site name rendered into the doc configs")
	version := flag.String("version", "2.0.0", "SDK version rendered into the doc configs")
	flag.Parse()

	params := docs.Params{
		Dir:      *dir,
		SiteName: *siteName,
		Version:  *version,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *setup {
		if err := docs.Setup(params, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "setup error: %v\n", err)
			return 1
		}
	}

	if err := docs.Generate(ctx, *tool, params, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "docsgen error: %v\n", err)
		return 1
	}
	return 0
}
