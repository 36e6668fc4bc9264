package live

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"agenteval/pkg/agenteval"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatScore renders the overall score column.
func formatScore(row EvaluationRow) string {
	if !row.HasScore {
		return "-"
	}
	return strconv.FormatFloat(row.Score, 'f', 3, 64)
}

// formatGrade renders the grade column.
func formatGrade(row EvaluationRow) string {
	if row.Grade == "" {
		return "-"
	}
	return row.Grade
}

// formatAge renders the elapsed time since an evaluation was created.
func formatAge(row EvaluationRow, now time.Time) string {
	if row.CreatedAt.IsZero() || now.Before(row.CreatedAt) {
		return "-"
	}
	return now.Sub(row.CreatedAt).Round(time.Second).String()
}

// formatID truncates long resource ids for display.
func formatID(id string) string {
	const limit = 16
	if len(id) <= limit {
		return id
	}
	return id[:limit-3] + "..."
}

// statusLabel maps lifecycle states to display labels.
func statusLabel(status agenteval.Status) string {
	if status == "" {
		return "unknown"
	}
	return string(status)
}

// stylizeStatus colors a status label.
func stylizeStatus(text string, status agenteval.Status, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(statusColor(status)).Render(text)
}

// statusColor picks the color for a lifecycle state.
func statusColor(status agenteval.Status) lipgloss.Color {
	switch status {
	case agenteval.StatusPending:
		return lipgloss.Color("178")
	case agenteval.StatusRunning:
		return lipgloss.Color("33")
	case agenteval.StatusCompleted:
		return lipgloss.Color("42")
	case agenteval.StatusFailed:
		return lipgloss.Color("160")
	default:
		return lipgloss.Color("244")
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// truncate shortens free-form text to a display width.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if len(normalized) <= limit {
		return normalized
	}
	if limit <= 3 {
		return normalized[:limit]
	}
	return normalized[:limit-3] + "..."
}
