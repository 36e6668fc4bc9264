//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cucumber/godog"
)

var gradeLine = regexp.MustCompile(`Score:\s+\d\.\d{3} \((A\+|A|B|C|D|F)\)`)

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

// theExitCodeIsZero asserts that the CLI succeeded.
func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

// theOutputContains checks stdout for a snippet.
func (s *featureState) theOutputContains(snippet string) error {
	if !strings.Contains(s.stdout.String(), snippet) {
		return fmt.Errorf("expected %q in output, got %q", snippet, s.stdout.String())
	}
	return nil
}

// theErrorOutputMentions checks stderr for a snippet.
func (s *featureState) theErrorOutputMentions(snippet string) error {
	if !strings.Contains(s.stderr.String(), snippet) {
		return fmt.Errorf("expected %q in error output, got %q", snippet, s.stderr.String())
	}
	return nil
}

// theOutputReportsAGrade checks that a score line with a letter grade was
// printed.
func (s *featureState) theOutputReportsAGrade() error {
	if !gradeLine.MatchString(s.stdout.String()) {
		return fmt.Errorf("expected a scored summary, got %q", s.stdout.String())
	}
	return nil
}
