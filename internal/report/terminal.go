package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var terminalColumns = []struct {
	title string
	width int
}{
	{"AGENT", 20},
	{"SUITE", 20},
	{"SCORE", 7},
	{"PASS RATE", 9},
	{"GRADE", 5},
	{"WHEN", 16},
}

// RenderText renders the report as a plain-text table for terminals.
// Colors are applied per grade unless noColor is set.
func RenderText(data Data, noColor bool) string {
	var b strings.Builder

	title := fmt.Sprintf("Latest scores | %d evaluations recorded | generated %s",
		data.Evaluations, formatTimestamp(data.GeneratedAt))
	b.WriteString(stylize(title, "33", noColor))
	b.WriteString("\n\n")

	if len(data.Rows) == 0 {
		b.WriteString("No completed evaluations in history.\n")
		return b.String()
	}

	var header strings.Builder
	for i, col := range terminalColumns {
		if i > 0 {
			header.WriteString("  ")
		}
		header.WriteString(padRight(col.title, col.width))
	}
	b.WriteString(stylize(strings.TrimRight(header.String(), " "), "252", noColor))
	b.WriteString("\n")

	for _, row := range data.Rows {
		cells := []string{
			truncateCell(row.AgentName, terminalColumns[0].width),
			truncateCell(row.SuiteName, terminalColumns[1].width),
			formatScore(row.OverallScore),
			formatPassRate(row.PassRate),
			row.Grade,
			formatTimestamp(row.CreatedAt),
		}
		var line strings.Builder
		for i, cell := range cells {
			if i > 0 {
				line.WriteString("  ")
			}
			line.WriteString(padRight(cell, terminalColumns[i].width))
		}
		b.WriteString(stylize(strings.TrimRight(line.String(), " "), gradeColor(row.Grade), noColor))
		b.WriteString("\n")
	}
	return b.String()
}

func truncateCell(value string, limit int) string {
	if limit <= 3 || len(value) <= limit {
		return value
	}
	return value[:limit-3] + "..."
}

func gradeColor(grade string) string {
	switch grade {
	case "A+", "A":
		return "42"
	case "B":
		return "78"
	case "C":
		return "178"
	default:
		return "160"
	}
}

func stylize(value, color string, noColor bool) string {
	if noColor {
		return value
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(value)
}
