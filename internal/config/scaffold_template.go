package config

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ScaffoldParams feed the starter config template.
type ScaffoldParams struct {
	BaseURL string
	KeyEnv  string
}

const scaffoldConfigFormat = `version: 1

api:
  base_url: "%s"
  key_env: "%s"
  timeout_seconds: 30

defaults:
  test_suite: "suite_001"
  wait_timeout_seconds: 300

history:
  path: ".agenteval/history.duckdb"

watch:
  interval_seconds: 2
  page_limit: 20
`

// ScaffoldConfig is the starter config template.
func ScaffoldConfig(params ScaffoldParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, scaffoldConfigFormat, params.BaseURL, params.KeyEnv)
		return err
	})
}
