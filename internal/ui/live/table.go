package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// defaultColumns returns the watch table layout.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 17},
		{Title: "AGENT", Width: 17},
		{Title: "SUITE", Width: 10},
		{Title: "STATUS", Width: 10},
		{Title: "SCORE", Width: 6},
		{Title: "GRADE", Width: 5},
		{Title: "AGE", Width: 8},
	}
}

// columnsForWidth shrinks the layout on narrow terminals.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	if width >= 80 {
		return columns
	}
	// Drop AGENT and AGE first; ids stay visible.
	narrow := []table.Column{columns[0], columns[2], columns[3], columns[4], columns[5]}
	return narrow
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool, width int) []table.Row {
	narrow := width > 0 && width < 80
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		status := stylizeStatus(statusLabel(row.Status), row.Status, noColor)
		if narrow {
			rows = append(rows, table.Row{
				formatID(row.ID),
				row.SuiteID,
				status,
				formatScore(row),
				formatGrade(row),
			})
			continue
		}
		rows = append(rows, table.Row{
			formatID(row.ID),
			formatID(row.AgentID),
			row.SuiteID,
			status,
			formatScore(row),
			formatGrade(row),
			formatAge(row, now),
		})
	}
	return rows
}
