package docs

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
)

// lookPath and runTool are package-level seams so tests can fake the
// installed toolchains.
var (
	lookPath = exec.LookPath

	runTool = func(ctx context.Context, dir, name string, args ...string) error {
		cmd := exec.CommandContext(ctx, name, args...)
		cmd.Dir = dir
		output, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("%s %s: %w (%s)", name, strings.Join(args, " "), err, strings.TrimSpace(string(output)))
		}
		return nil
	}
)

func generateMkDocs(ctx context.Context, params Params, out io.Writer) error {
	pages := []struct {
		path     string
		template string
	}{
		{"mkdocs.yml", "mkdocs.yml.tmpl"},
		{filepath.Join("docs", "index.md"), "mkdocs-index.md.tmpl"},
		{filepath.Join("docs", "getting-started", "quickstart.md"), "quickstart.md.tmpl"},
		{filepath.Join("docs", "getting-started", "authentication.md"), "authentication.md.tmpl"},
	}
	for _, page := range pages {
		if err := writeRendered(filepath.Join(params.Dir, page.path), page.template, params); err != nil {
			return err
		}
	}
	// gomarkdoc owns docs/api/reference.md; seed it only when missing so
	// the nav target exists.
	refPath := filepath.Join(params.Dir, "docs", "api", "reference.md")
	if err := writeRenderedIfMissing(refPath, "api-reference.md.tmpl", params); err != nil {
		return err
	}
	fmt.Fprintln(out, "mkdocs: wrote mkdocs.yml and docs pages")

	if _, err := lookPath("mkdocs"); err != nil {
		fmt.Fprintln(out, "mkdocs: skipped build (mkdocs not installed)")
		return nil
	}
	if err := runTool(ctx, params.Dir, "mkdocs", "build"); err != nil {
		return err
	}
	fmt.Fprintln(out, "mkdocs: built site/")
	return nil
}

func generateHugo(ctx context.Context, params Params, out io.Writer) error {
	siteDir := filepath.Join(params.Dir, "docs", "hugo")
	if err := writeRendered(filepath.Join(siteDir, "hugo.toml"), "hugo.toml.tmpl", params); err != nil {
		return err
	}
	if err := writeRendered(filepath.Join(siteDir, "content", "_index.md"), "hugo-index.md.tmpl", params); err != nil {
		return err
	}
	fmt.Fprintln(out, "hugo: wrote docs/hugo site skeleton")

	if _, err := lookPath("hugo"); err != nil {
		fmt.Fprintln(out, "hugo: skipped build (hugo not installed)")
		return nil
	}
	if err := runTool(ctx, params.Dir, "hugo", "--source", filepath.Join("docs", "hugo")); err != nil {
		return err
	}
	fmt.Fprintln(out, "hugo: built docs/hugo/public/")
	return nil
}

func generateGomarkdoc(ctx context.Context, params Params, out io.Writer) error {
	if err := writeRendered(filepath.Join(params.Dir, ".gomarkdoc.yml"), "gomarkdoc.yml.tmpl", params); err != nil {
		return err
	}
	fmt.Fprintln(out, "gomarkdoc: wrote .gomarkdoc.yml")

	if _, err := lookPath("gomarkdoc"); err != nil {
		fmt.Fprintln(out, "gomarkdoc: skipped (gomarkdoc not installed)")
		return nil
	}
	if err := runTool(ctx, params.Dir, "gomarkdoc", "."); err != nil {
		return err
	}
	fmt.Fprintln(out, "gomarkdoc: generated docs/api/reference.md")
	return nil
}
