package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the watch header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	elapsed := ""
	if !state.StartedAt.IsZero() {
		elapsed = now.Sub(state.StartedAt).Round(100 * time.Millisecond).String()
	}
	line := "Evaluations"
	if state.Total > 0 {
		line += " | Total: " + fmtInt(state.Total)
	}
	if state.Page > 0 {
		line += " | Page: " + fmtInt(state.Page)
	}
	if elapsed != "" {
		line += " | Watching: " + elapsed
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the status counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := "Pending: " + fmtInt(counts.Pending) +
		" Running: " + fmtInt(counts.Running) +
		" Completed: " + fmtInt(counts.Completed) +
		" Failed: " + fmtInt(counts.Failed)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the last poll outcome line.
func renderFooter(state State, noColor bool) string {
	if state.LastError != "" {
		return stylize("Poll error: "+truncate(state.LastError, 100), noColor, lipgloss.Color("160"))
	}
	if state.LastUpdate.IsZero() {
		return stylize("Waiting for first snapshot...", noColor, lipgloss.Color("244"))
	}
	return stylize("Updated "+state.LastUpdate.Format("15:04:05")+" | q to quit", noColor, lipgloss.Color("244"))
}
