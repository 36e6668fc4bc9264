package report

import (
	"fmt"
	"strings"
	"time"
)

func formatScore(score float64) string {
	return fmt.Sprintf("%.3f", score)
}

// formatPassRate renders a 0..1 rate as a percentage with two decimals.
func formatPassRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.UTC().Format("2006-01-02 15:04")
}

func padRight(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
