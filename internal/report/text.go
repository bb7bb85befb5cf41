package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/unbound-force/mulcheck/internal/suite"
)

// WriteText writes a suite report as human-readable styled text to the
// writer. Output uses lipgloss for color and formatting when the output
// is a TTY; degrades gracefully for pipes and CI.
func WriteText(w io.Writer, report *suite.Report) error {
	s := DefaultStyles()

	if len(report.Results) == 0 {
		fmt.Fprintln(w, s.Muted.Render("No checks run."))
		return nil
	}

	rows := make([][]string, 0, len(report.Results))
	for _, res := range report.Results {
		status := "PASS"
		if !res.Pass {
			status = "FAIL"
		}
		rows = append(rows, []string{
			res.Case.Name,
			fmt.Sprintf("%d", res.Case.A),
			fmt.Sprintf("%d", res.Case.B),
			fmt.Sprintf("%d", res.Case.Want),
			fmt.Sprintf("%d", res.Got),
			status,
		})
	}

	results := report.Results
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			// Color the status column based on outcome.
			if col == 5 && row >= 0 && row < len(results) {
				return s.StatusStyle(results[row].Pass)
			}
			return s.TableCell
		}).
		Headers("CASE", "A", "B", "WANT", "GOT", "STATUS").
		Rows(rows...)

	fmt.Fprintln(w, t)

	// Mismatch diagnostics: want vs. got, one line per failed check.
	for _, res := range report.Results {
		if res.Pass {
			continue
		}
		fmt.Fprintf(w, "%s %s\n",
			s.Fail.Render(fmt.Sprintf("  %s:", res.Case.Name)),
			fmt.Sprintf("multiply(%d, %d) = %d, want %d",
				res.Case.A, res.Case.B, res.Got, res.Case.Want))
	}

	// Summary.
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Header.Render("--- Summary ---"))
	fmt.Fprintf(w, "%s  %d\n", s.SummaryLabel.Render("Checks run:"), len(report.Results))
	fmt.Fprintf(w, "%s  %d\n", s.SummaryLabel.Render("Passed:"), report.Summary.Passed)
	fmt.Fprintf(w, "%s  %d\n", s.SummaryLabel.Render("Failed:"), report.Summary.Failed)
	if skipped := report.Summary.Total - len(report.Results); skipped > 0 {
		fmt.Fprintf(w, "%s  %s\n", s.SummaryLabel.Render("Skipped:"),
			s.Muted.Render(fmt.Sprintf("%d (stopped at first failure)", skipped)))
	}

	verdict := s.Pass.Render("PASS")
	if !report.Ok() {
		verdict = s.Fail.Render("FAIL")
	}
	fmt.Fprintf(w, "%s  %s\n", s.SummaryLabel.Render("Verdict:"), verdict)

	return nil
}
