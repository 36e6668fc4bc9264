package report

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Agent Evaluation Report</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem; color: #1f2430; }
h1 { font-size: 1.4rem; }
p.meta { color: #667; }
table { border-collapse: collapse; margin-top: 1rem; }
th, td { padding: 0.4rem 0.9rem; border-bottom: 1px solid #dde; text-align: left; }
th { background: #f4f6fa; }
td.num { text-align: right; font-variant-numeric: tabular-nums; }
span.grade { padding: 0.1rem 0.45rem; border-radius: 0.3rem; color: #fff; }
span.grade-good { background: #1a7f37; }
span.grade-mid { background: #b08800; }
span.grade-poor { background: #b42318; }
</style>
</head>
<body>
`

// ReportPage renders Data as a standalone HTML document.
func ReportPage(data Data) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<h1>Agent Evaluation Report</h1>\n<p class=\"meta\">%d evaluations recorded. Generated %s.</p>\n",
			data.Evaluations, templ.EscapeString(formatTimestamp(data.GeneratedAt))); err != nil {
			return err
		}
		if len(data.Rows) == 0 {
			_, err := io.WriteString(w, "<p>No completed evaluations in history.</p>\n</body>\n</html>\n")
			return err
		}
		if _, err := io.WriteString(w, "<table>\n<tr><th>Agent</th><th>Suite</th><th>Score</th><th>Pass rate</th><th>Grade</th><th>When</th></tr>\n"); err != nil {
			return err
		}
		for _, row := range data.Rows {
			if _, err := fmt.Fprintf(w,
				"<tr><td>%s</td><td>%s</td><td class=\"num\">%s</td><td class=\"num\">%s</td><td><span class=\"grade %s\">%s</span></td><td>%s</td></tr>\n",
				templ.EscapeString(row.AgentName),
				templ.EscapeString(row.SuiteName),
				formatScore(row.OverallScore),
				formatPassRate(row.PassRate),
				gradeClass(row.Grade),
				templ.EscapeString(row.Grade),
				templ.EscapeString(formatTimestamp(row.CreatedAt)),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>\n</body>\n</html>\n")
		return err
	})
}

func gradeClass(grade string) string {
	switch grade {
	case "A+", "A", "B":
		return "grade-good"
	case "C":
		return "grade-mid"
	default:
		return "grade-poor"
	}
}
