// docs-test-results summarizes a `go test -json` stream into the test
// results artifacts embedded in the documentation site.
//
//	go test -json ./... | docs-test-results -md docs/test-results.md
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"agenteval/internal/docs"
)

func main() {
	os.Exit(run())
}

func run() int {
	jsonPath := flag.String("json", "-", "write the JSON report here; - for stdout")
	mdPath := flag.String("md", "", "also write a Markdown results page here")
	flag.Parse()

	report, err := docs.ParseTestEvents(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "docs-test-results: %v\n", err)
		return 1
	}
	report.GeneratedAt = time.Now().UTC()

	if err := writeJSON(report, *jsonPath); err != nil {
		fmt.Fprintf(os.Stderr, "docs-test-results: %v\n", err)
		return 1
	}
	if *mdPath != "" {
		if err := writeMarkdown(report, *mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "docs-test-results: %v\n", err)
			return 1
		}
	}
	return 0
}

func writeJSON(report *docs.TestReport, path string) error {
	if path == "-" {
		return report.WriteJSON(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeMarkdown(report *docs.TestReport, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteMarkdown(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
