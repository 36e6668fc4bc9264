package docs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"agenteval/internal/testutil"
)

// toolRecorder fakes installed toolchains and records invocations.
type toolRecorder struct {
	dir  string
	name string
	args []string
}

func installTools(t *testing.T) *toolRecorder {
	t.Helper()
	rec := &toolRecorder{}
	origLook := lookPath
	origRun := runTool
	lookPath = func(name string) (string, error) { return "/usr/bin/" + name, nil }
	runTool = func(_ context.Context, dir, name string, args ...string) error {
		rec.dir = dir
		rec.name = name
		rec.args = args
		return nil
	}
	t.Cleanup(func() {
		lookPath = origLook
		runTool = origRun
	})
	return rec
}

func TestGenerateMkDocsRendersMetadata(t *testing.T) {
	noTools(t)
	dir := t.TempDir()
	ctx := testutil.Context(t, 5*time.Second)

	params := Params{Dir: dir, SiteName: "My Eval SDK", Version: "9.9.9"}
	if err := Generate(ctx, ToolMkDocs, params, &bytes.Buffer{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	config, err := os.ReadFile(filepath.Join(dir, "mkdocs.yml"))
	if err != nil {
		t.Fatalf("read mkdocs.yml: %v", err)
	}
	if !strings.Contains(string(config), "site_name: My Eval SDK") {
		t.Fatalf("site name not rendered:\n%s", config)
	}
	if !strings.Contains(string(config), `version: "9.9.9"`) {
		t.Fatalf("version not rendered:\n%s", config)
	}

	index, err := os.ReadFile(filepath.Join(dir, "docs", "index.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "My Eval SDK") {
		t.Fatalf("index missing site name:\n%s", index)
	}
}

func TestGenerateMkDocsBuildsWhenInstalled(t *testing.T) {
	rec := installTools(t)
	dir := t.TempDir()
	ctx := testutil.Context(t, 5*time.Second)

	if err := Generate(ctx, ToolMkDocs, Params{Dir: dir}, &bytes.Buffer{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if rec.name != "mkdocs" || len(rec.args) != 1 || rec.args[0] != "build" {
		t.Fatalf("unexpected invocation: %s %v", rec.name, rec.args)
	}
	if rec.dir != dir {
		t.Fatalf("build ran in %s, want %s", rec.dir, dir)
	}
}

func TestGenerateMkDocsKeepsExistingReference(t *testing.T) {
	noTools(t)
	dir := t.TempDir()
	ctx := testutil.Context(t, 5*time.Second)

	refPath := filepath.Join(dir, "docs", "api", "reference.md")
	if err := os.MkdirAll(filepath.Dir(refPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(refPath, []byte("generated by gomarkdoc"), 0o644); err != nil {
		t.Fatalf("write reference: %v", err)
	}

	if err := Generate(ctx, ToolMkDocs, Params{Dir: dir}, &bytes.Buffer{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	content, err := os.ReadFile(refPath)
	if err != nil {
		t.Fatalf("read reference: %v", err)
	}
	if string(content) != "generated by gomarkdoc" {
		t.Fatalf("reference was overwritten:\n%s", content)
	}
}

func TestGenerateHugoWritesSkeleton(t *testing.T) {
	noTools(t)
	dir := t.TempDir()
	var out bytes.Buffer
	ctx := testutil.Context(t, 5*time.Second)

	if err := Generate(ctx, ToolHugo, Params{Dir: dir, SiteName: "Eval SDK"}, &out); err != nil {
		t.Fatalf("generate: %v", err)
	}
	config, err := os.ReadFile(filepath.Join(dir, "docs", "hugo", "hugo.toml"))
	if err != nil {
		t.Fatalf("read hugo.toml: %v", err)
	}
	if !strings.Contains(string(config), `title = "Eval SDK"`) {
		t.Fatalf("title not rendered:\n%s", config)
	}
	if _, err := os.Stat(filepath.Join(dir, "docs", "hugo", "content", "_index.md")); err != nil {
		t.Fatalf("missing content index: %v", err)
	}
	if !strings.Contains(out.String(), "skipped build") {
		t.Fatalf("expected skip notice:\n%s", out.String())
	}
}

func TestGenerateGomarkdocRunsTool(t *testing.T) {
	rec := installTools(t)
	dir := t.TempDir()
	ctx := testutil.Context(t, 5*time.Second)

	if err := Generate(ctx, ToolGomarkdoc, Params{Dir: dir}, &bytes.Buffer{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	config, err := os.ReadFile(filepath.Join(dir, ".gomarkdoc.yml"))
	if err != nil {
		t.Fatalf("read .gomarkdoc.yml: %v", err)
	}
	if !strings.Contains(string(config), "output: docs/api/reference.md") {
		t.Fatalf("output path not rendered:\n%s", config)
	}
	if rec.name != "gomarkdoc" {
		t.Fatalf("unexpected tool: %s", rec.name)
	}
}
