package report

import (
	"context"
	"strings"
)

// RenderHTML renders the report page into a string.
func RenderHTML(ctx context.Context, data Data) (string, error) {
	var builder strings.Builder
	if err := ReportPage(data).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
