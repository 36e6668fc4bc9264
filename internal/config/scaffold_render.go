package config

import (
	"context"
	"strings"
)

// renderScaffoldConfig builds the scaffold YAML via the config template.
func renderScaffoldConfig(params ScaffoldParams) (string, error) {
	var builder strings.Builder
	if err := ScaffoldConfig(params).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
