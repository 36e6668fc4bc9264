package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateCommandAcceptsGoodConfig(t *testing.T) {
	configPath := writeProjectConfig(t, "http://127.0.0.1:9/v1")

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Config OK") {
		t.Fatalf("expected Config OK, got %q", out.String())
	}
}

func TestValidateCommandReportsIssues(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	bad := "version: 7\napi:\n  base_url: \"ftp://example.com\"\n"
	if err := os.WriteFile(configPath, []byte(bad), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	output := err.String()
	if !strings.Contains(output, "Validation failed") {
		t.Fatalf("expected failure header, got %q", output)
	}
	if !strings.Contains(output, "version") {
		t.Fatalf("expected version issue, got %q", output)
	}
	if !strings.Contains(output, "api.base_url") {
		t.Fatalf("expected base_url issue, got %q", output)
	}
}

func TestValidateCommandRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	bad := "version: 1\nunknown_section:\n  foo: 1\n"
	if err := os.WriteFile(configPath, []byte(bad), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "unknown_section") {
		t.Fatalf("expected unknown field in error, got %q", err.String())
	}
}

func TestValidateCommandMissingConfig(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", filepath.Join(t.TempDir(), "missing.yml")}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Validation failed") {
		t.Fatalf("expected failure message, got %q", err.String())
	}
}
