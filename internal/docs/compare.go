package docs

import (
	"fmt"
	"io"
	"path/filepath"
)

// writeComparison writes the toolchain comparison to docs/comparison.md
// and echoes it to out.
func writeComparison(params Params, out io.Writer) error {
	content, err := templatesFS.ReadFile("templates/comparison.md")
	if err != nil {
		return fmt.Errorf("read comparison: %w", err)
	}
	path := filepath.Join(params.Dir, "docs", "comparison.md")
	if err := writeFile(path, content); err != nil {
		return err
	}
	if _, err := out.Write(content); err != nil {
		return err
	}
	fmt.Fprintln(out, "compare: wrote docs/comparison.md")
	return nil
}
