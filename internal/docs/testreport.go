package docs

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// TestEvent mirrors one line of `go test -json` output.
type TestEvent struct {
	Action  string  `json:"Action"`
	Package string  `json:"Package"`
	Test    string  `json:"Test"`
	Elapsed float64 `json:"Elapsed"`
}

// CaseResult records the terminal state of a single test.
type CaseResult struct {
	Package  string  `json:"package"`
	Name     string  `json:"name"`
	Status   string  `json:"status"`
	Duration float64 `json:"duration"`
}

// PackageSummary rolls a package's tests up into counts.
type PackageSummary struct {
	Package  string  `json:"package"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Skipped  int     `json:"skipped"`
	Duration float64 `json:"duration"`
}

// TestReport is the artifact embedded into the documentation site.
type TestReport struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Passed      int              `json:"passed"`
	Failed      int              `json:"failed"`
	Skipped     int              `json:"skipped"`
	Packages    []PackageSummary `json:"packages"`
	Failures    []CaseResult     `json:"failures,omitempty"`
}

// ParseTestEvents reads a `go test -json` stream and folds the terminal
// events into a report. Lines that do not parse as events are skipped so
// interleaved build output does not abort the run. A test that reruns keeps
// its last terminal state.
func ParseTestEvents(r io.Reader) (*TestReport, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	cases := make(map[string]CaseResult)
	pkgDurations := make(map[string]float64)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var event TestEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue
		}
		switch event.Action {
		case "pass", "fail", "skip":
		default:
			continue
		}
		if event.Test == "" {
			pkgDurations[event.Package] = event.Elapsed
			continue
		}
		cases[event.Package+"::"+event.Test] = CaseResult{
			Package:  event.Package,
			Name:     event.Test,
			Status:   event.Action,
			Duration: event.Elapsed,
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read test events: %w", err)
	}

	report := &TestReport{}
	byPackage := make(map[string]*PackageSummary)
	for _, c := range cases {
		summary, ok := byPackage[c.Package]
		if !ok {
			summary = &PackageSummary{Package: c.Package, Duration: pkgDurations[c.Package]}
			byPackage[c.Package] = summary
		}
		switch c.Status {
		case "pass":
			summary.Passed++
			report.Passed++
		case "fail":
			summary.Failed++
			report.Failed++
			report.Failures = append(report.Failures, c)
		case "skip":
			summary.Skipped++
			report.Skipped++
		}
	}
	for _, summary := range byPackage {
		report.Packages = append(report.Packages, *summary)
	}
	sort.Slice(report.Packages, func(i, j int) bool {
		return report.Packages[i].Package < report.Packages[j].Package
	})
	sort.Slice(report.Failures, func(i, j int) bool {
		if report.Failures[i].Package != report.Failures[j].Package {
			return report.Failures[i].Package < report.Failures[j].Package
		}
		return report.Failures[i].Name < report.Failures[j].Name
	})
	return report, nil
}

// WriteJSON emits the report as indented JSON.
func (r *TestReport) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("write test report: %w", err)
	}
	return nil
}

// WriteMarkdown emits the report as a documentation page.
func (r *TestReport) WriteMarkdown(w io.Writer) error {
	var b strings.Builder
	b.WriteString("# Test results\n\n")
	if !r.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "Generated %s.\n\n", r.GeneratedAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(&b, "%d passed, %d failed, %d skipped across %d packages.\n\n",
		r.Passed, r.Failed, r.Skipped, len(r.Packages))
	b.WriteString("| Package | Passed | Failed | Skipped | Duration |\n")
	b.WriteString("|---------|--------|--------|---------|----------|\n")
	for _, p := range r.Packages {
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %.2fs |\n",
			p.Package, p.Passed, p.Failed, p.Skipped, p.Duration)
	}
	if len(r.Failures) > 0 {
		b.WriteString("\n## Failures\n\n")
		for _, f := range r.Failures {
			fmt.Fprintf(&b, "- %s: %s (%.2fs)\n", f.Package, f.Name, f.Duration)
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write test report page: %w", err)
	}
	return nil
}
