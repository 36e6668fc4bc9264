// Package docs scaffolds and builds the SDK documentation site with
// one of three toolchains: mkdocs, hugo, or gomarkdoc.
package docs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Tool names accepted by Generate.
const (
	ToolMkDocs    = "mkdocs"
	ToolHugo      = "hugo"
	ToolGomarkdoc = "gomarkdoc"
	ToolAll       = "all"
	ToolCompare   = "compare"
)

// Params carry the project metadata rendered into the doc configs.
type Params struct {
	// Dir is the project root where configs and the docs tree are
	// written. Defaults to the current directory.
	Dir      string
	SiteName string
	Version  string
}

func (p Params) withDefaults() Params {
	if p.Dir == "" {
		p.Dir = "."
	}
	if p.SiteName == "" {
		p.SiteName = "Agent Evaluation SDK"
	}
	if p.Version == "" {
		p.Version = "2.0.0"
	}
	return p
}

// Setup creates the documentation directory skeleton and reports which
// toolchains are installed.
func Setup(params Params, out io.Writer) error {
	params = params.withDefaults()
	dirs := []string{
		"docs",
		filepath.Join("docs", "getting-started"),
		filepath.Join("docs", "api"),
		filepath.Join("docs", "examples"),
		filepath.Join("docs", "hugo", "content"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(params.Dir, dir), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	fmt.Fprintln(out, "docs directory structure created")

	probes := []struct {
		name string
		hint string
	}{
		{"mkdocs", "pip install mkdocs mkdocs-material"},
		{"hugo", "https://gohugo.io/installation/"},
		{"gomarkdoc", "go install github.com/princjef/gomarkdoc/cmd/gomarkdoc@latest"},
	}
	for _, probe := range probes {
		if _, err := lookPath(probe.name); err != nil {
			fmt.Fprintf(out, "%s: not installed (%s)\n", probe.name, probe.hint)
			continue
		}
		fmt.Fprintf(out, "%s: installed\n", probe.name)
	}
	return nil
}

// Generate renders configuration for the named tool and builds the
// site when the tool is installed. "all" runs every generator plus the
// comparison.
func Generate(ctx context.Context, tool string, params Params, out io.Writer) error {
	params = params.withDefaults()
	switch tool {
	case ToolHugo:
		return generateHugo(ctx, params, out)
	case ToolGomarkdoc:
		return generateGomarkdoc(ctx, params, out)
	case ToolMkDocs:
		return generateMkDocs(ctx, params, out)
	case ToolCompare:
		return writeComparison(params, out)
	case ToolAll:
		if err := generateHugo(ctx, params, out); err != nil {
			return err
		}
		if err := generateGomarkdoc(ctx, params, out); err != nil {
			return err
		}
		if err := generateMkDocs(ctx, params, out); err != nil {
			return err
		}
		return writeComparison(params, out)
	default:
		return fmt.Errorf("unknown tool %q (want mkdocs, hugo, gomarkdoc, all, or compare)", tool)
	}
}
