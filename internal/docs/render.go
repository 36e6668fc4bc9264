package docs

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

func renderTemplate(name string, params Params) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, params); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// writeRendered renders a template to path, creating parent directories.
func writeRendered(path, name string, params Params) error {
	content, err := renderTemplate(name, params)
	if err != nil {
		return err
	}
	return writeFile(path, content)
}

// writeRenderedIfMissing renders a template to path unless a file is
// already there.
func writeRenderedIfMissing(path, name string, params Params) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return writeRendered(path, name, params)
}

func writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
